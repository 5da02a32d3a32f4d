package tools

// AllTools contains all tool specifications for the Firefly III MCP server.
// Tools are organized by category for easier maintenance. Every tool talks
// to the configured Firefly III instance, so OpenWorld is set throughout.
var AllTools = []ToolSpec{
	// ==========================================================================
	// SYSTEM TOOLS
	// ==========================================================================
	{
		Name:        "firefly_health_check",
		Method:      "SystemHealthCheck",
		Title:       "Health Check",
		Category:    "system",
		Description: "Verify the Firefly III instance is reachable and the access token works. Returns the server version on success; reports failures as a result rather than an error.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_system_info",
		Method:      "SystemInfo",
		Title:       "Get System Info",
		Category:    "system",
		Description: "Fetch the Firefly III server version, API version, PHP version, operating system, and database driver.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_cron_status",
		Method:      "SystemCron",
		Title:       "Run Cron Jobs",
		Category:    "system",
		Description: "Trigger the Firefly III scheduled jobs (recurring transactions, auto-budgets, bill warnings) using the CLI token from the profile page, and return the job report.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_configuration",
		Method:      "SystemListConfig",
		Title:       "List Configuration",
		Category:    "system",
		Description: "List all Firefly III configuration entries with their values and whether each is editable.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_configuration_value",
		Method:      "SystemGetConfig",
		Title:       "Get Configuration Value",
		Category:    "system",
		Description: "Fetch one Firefly III configuration entry by key, e.g. configuration.is_demo_site.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_set_configuration_value",
		Method:      "SystemSetConfig",
		Title:       "Set Configuration Value",
		Category:    "system",
		Description: "Change an editable configuration entry. The new value must be a JSON literal (true, 5, \"en_US\") and is validated before any backend call.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_preferences",
		Method:      "SystemListPreferences",
		Title:       "List Preferences",
		Category:    "system",
		Description: "List the current user's preferences with their raw JSON values.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_preference",
		Method:      "SystemGetPreference",
		Title:       "Get Preference",
		Category:    "system",
		Description: "Fetch one user preference by name, e.g. currencyPreference.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_preference",
		Method:      "SystemCreatePreference",
		Title:       "Create Preference",
		Category:    "system",
		Description: "Store a new user preference. The value must be a JSON literal and is validated before any backend call.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_preference",
		Method:      "SystemUpdatePreference",
		Title:       "Update Preference",
		Category:    "system",
		Description: "Change an existing user preference. The value must be a JSON literal and is validated before any backend call.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_users",
		Method:      "SystemListUsers",
		Title:       "List Users",
		Category:    "system",
		Description: "List the users of this Firefly III administration with email, role, and blocked status. Requires owner permissions.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_user",
		Method:      "SystemGetUser",
		Title:       "Get User",
		Category:    "system",
		Description: "Fetch one user by numeric ID. Requires owner permissions.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_user",
		Method:      "SystemDeleteUser",
		Title:       "Delete User",
		Category:    "system",
		Description: "Delete a user and ALL their data. Requires confirm=true; without it the tool returns a warning and makes no backend call.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_user_groups",
		Method:      "SystemListUserGroups",
		Title:       "List User Groups",
		Category:    "system",
		Description: "List the financial administrations (user groups) the current user belongs to.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_user_group",
		Method:      "SystemGetUserGroup",
		Title:       "Get User Group",
		Category:    "system",
		Description: "Fetch one financial administration by numeric ID, with its members and their roles.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_raw_request",
		Method:      "SystemRawRequest",
		Title:       "Raw API Request",
		Category:    "system",
		Description: "Escape hatch for API endpoints not covered by other tools. Issues GET, POST, PUT, or DELETE against a path appended verbatim to the API base (e.g. /v1/object-groups) and pretty-prints the JSON response. A request body must be valid JSON.",
		OpenWorld:   true,
	},

	// ==========================================================================
	// ACCOUNT TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_accounts",
		Method:      "AccountsList",
		Title:       "List Accounts",
		Category:    "accounts",
		Description: "List accounts, optionally filtered by type (asset, expense, revenue, liability, cash) and by a case-insensitive name substring. Returns up to 50 rows with balances.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_account",
		Method:      "AccountsGet",
		Title:       "Get Account",
		Category:    "accounts",
		Description: "Fetch one account by numeric ID, including balance, currency, IBAN, and account role.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_account",
		Method:      "AccountsCreate",
		Title:       "Create Account",
		Category:    "accounts",
		Description: "Create an account. Requires name and type (asset, expense, revenue, liability); liabilities also take liability_type and direction. Optional opening balance, IBAN, currency, and notes.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_account",
		Method:      "AccountsUpdate",
		Title:       "Update Account",
		Category:    "accounts",
		Description: "Update an account's name, IBAN, notes, or other fields. At least one field must be supplied.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_account",
		Method:      "AccountsDelete",
		Title:       "Delete Account",
		Category:    "accounts",
		Description: "Delete an account and its transactions. Requires confirm=true; without it the tool returns a warning and makes no backend call.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_account_transactions",
		Method:      "AccountsListTransactions",
		Title:       "List Account Transactions",
		Category:    "accounts",
		Description: "List transactions for one account, optionally filtered by date range and type. Returns up to 50 rows.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_account_attachments",
		Method:      "AccountsListAttachments",
		Title:       "List Account Attachments",
		Category:    "accounts",
		Description: "List attachment metadata (filename, title, size) for one account.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_account_piggy_banks",
		Method:      "AccountsListPiggyBanks",
		Title:       "List Account Piggy Banks",
		Category:    "accounts",
		Description: "List piggy banks attached to one asset account with target and current amounts.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// TRANSACTION TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_transactions",
		Method:      "TransactionsList",
		Title:       "List Transactions",
		Category:    "transactions",
		Description: "List transactions, optionally filtered by date range and type (withdrawal, deposit, transfer). Returns up to 50 rows.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_transaction",
		Method:      "TransactionsGet",
		Title:       "Get Transaction",
		Category:    "transactions",
		Description: "Fetch one transaction group by ID with all its splits.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_withdrawal",
		Method:      "TransactionsCreateWithdrawal",
		Title:       "Create Withdrawal",
		Category:    "transactions",
		Description: "Record an expense. Requires amount, description, and source account (ID or name); the destination defaults to the \"Cash account\". Date defaults to today. Optional category, budget, and comma-separated tags.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_deposit",
		Method:      "TransactionsCreateDeposit",
		Title:       "Create Deposit",
		Category:    "transactions",
		Description: "Record income. Requires amount, description, and destination account (ID or name); the source defaults to the \"Cash account\". Date defaults to today.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_transfer",
		Method:      "TransactionsCreateTransfer",
		Title:       "Create Transfer",
		Category:    "transactions",
		Description: "Move money between two of your own accounts. Requires amount, description, source, and destination (each an ID or a name). Date defaults to today.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_transaction",
		Method:      "TransactionsUpdate",
		Title:       "Update Transaction",
		Category:    "transactions",
		Description: "Update fields of an existing transaction (amount, description, date, category, budget, tags). Unspecified fields keep their current values.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_transaction",
		Method:      "TransactionsDelete",
		Title:       "Delete Transaction",
		Category:    "transactions",
		Description: "Delete a transaction group and all its splits. Requires confirm=true; without it the tool returns a warning and makes no backend call.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_transaction_journal",
		Method:      "TransactionsDeleteJournal",
		Title:       "Delete Transaction Split",
		Category:    "transactions",
		Description: "Delete a single split (journal) from a transaction group, leaving the other splits intact. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_transaction_by_journal",
		Method:      "TransactionsGetByJournal",
		Title:       "Get Transaction by Journal",
		Category:    "transactions",
		Description: "Fetch the transaction group that contains a given journal (split) ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// BUDGET TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_budgets",
		Method:      "BudgetsList",
		Title:       "List Budgets",
		Category:    "budgets",
		Description: "List budgets with spending totals, optionally scoped to a date range.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_budget",
		Method:      "BudgetsGet",
		Title:       "Get Budget",
		Category:    "budgets",
		Description: "Fetch one budget by numeric ID or by name.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_budget",
		Method:      "BudgetsCreate",
		Title:       "Create Budget",
		Category:    "budgets",
		Description: "Create a budget. Requires name; optional auto-budget type, amount, and period.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_budget",
		Method:      "BudgetsUpdate",
		Title:       "Update Budget",
		Category:    "budgets",
		Description: "Update a budget addressed by numeric ID or by name. At least one field must be supplied.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_budget",
		Method:      "BudgetsDelete",
		Title:       "Delete Budget",
		Category:    "budgets",
		Description: "Delete a budget. Its transactions survive but lose the budget link. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_budget_limits",
		Method:      "BudgetsListLimits",
		Title:       "List Budget Limits",
		Category:    "budgets",
		Description: "List the spending limits of one budget. The date range defaults to the current calendar month.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_budget_limit",
		Method:      "BudgetsGetLimit",
		Title:       "Get Budget Limit",
		Category:    "budgets",
		Description: "Fetch one budget limit by budget and limit ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_budget_limit",
		Method:      "BudgetsCreateLimit",
		Title:       "Create Budget Limit",
		Category:    "budgets",
		Description: "Set a spending limit on a budget. Requires amount; the period defaults to the current calendar month.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_budget_limit",
		Method:      "BudgetsUpdateLimit",
		Title:       "Update Budget Limit",
		Category:    "budgets",
		Description: "Change the amount or period of an existing budget limit.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_budget_limit",
		Method:      "BudgetsDeleteLimit",
		Title:       "Delete Budget Limit",
		Category:    "budgets",
		Description: "Delete a budget limit. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_budget_spending",
		Method:      "BudgetsSpending",
		Title:       "Get Budget Spending",
		Category:    "budgets",
		Description: "Report how much was spent in one budget (addressed by ID or name) over a period. The period defaults to the current calendar month.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_transactions_without_budget",
		Method:      "BudgetsWithoutBudget",
		Title:       "List Unbudgeted Transactions",
		Category:    "budgets",
		Description: "List transactions that have no budget assigned, optionally within a date range. Returns up to 50 rows.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_available_budgets",
		Method:      "BudgetsListAvailable",
		Title:       "List Available Budgets",
		Category:    "budgets",
		Description: "List available-budget amounts (the total you expect to be able to spend per period).",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_available_budget",
		Method:      "BudgetsGetAvailable",
		Title:       "Get Available Budget",
		Category:    "budgets",
		Description: "Fetch one available-budget entry by ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_available_budget",
		Method:      "BudgetsCreateAvailable",
		Title:       "Create Available Budget",
		Category:    "budgets",
		Description: "Create an available-budget amount for a period. Requires amount, start date, and end date.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_available_budget",
		Method:      "BudgetsUpdateAvailable",
		Title:       "Update Available Budget",
		Category:    "budgets",
		Description: "Change the amount or period of an available-budget entry.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_available_budget",
		Method:      "BudgetsDeleteAvailable",
		Title:       "Delete Available Budget",
		Category:    "budgets",
		Description: "Delete an available-budget entry. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// CATEGORY TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_categories",
		Method:      "CategoriesList",
		Title:       "List Categories",
		Category:    "categories",
		Description: "List all categories.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_category",
		Method:      "CategoriesGet",
		Title:       "Get Category",
		Category:    "categories",
		Description: "Fetch one category by ID, including per-currency spent and earned totals for an optional date range.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_category",
		Method:      "CategoriesCreate",
		Title:       "Create Category",
		Category:    "categories",
		Description: "Create a category. Requires name; optional notes.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_category",
		Method:      "CategoriesUpdate",
		Title:       "Update Category",
		Category:    "categories",
		Description: "Rename a category or change its notes.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_category",
		Method:      "CategoriesDelete",
		Title:       "Delete Category",
		Category:    "categories",
		Description: "Delete a category. Its transactions survive but lose the category link. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_category_transactions",
		Method:      "CategoriesListTransactions",
		Title:       "List Category Transactions",
		Category:    "categories",
		Description: "List transactions in one category, optionally filtered by date range. Returns up to 50 rows.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// TAG TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_tags",
		Method:      "TagsList",
		Title:       "List Tags",
		Category:    "tags",
		Description: "List all tags.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_tag",
		Method:      "TagsGet",
		Title:       "Get Tag",
		Category:    "tags",
		Description: "Fetch one tag by its text or numeric ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_tag",
		Method:      "TagsCreate",
		Title:       "Create Tag",
		Category:    "tags",
		Description: "Create a tag. Requires the tag text; optional date and description.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_tag",
		Method:      "TagsUpdate",
		Title:       "Update Tag",
		Category:    "tags",
		Description: "Rename a tag or change its date and description.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_tag",
		Method:      "TagsDelete",
		Title:       "Delete Tag",
		Category:    "tags",
		Description: "Delete a tag. Its transactions survive but lose the tag. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_tag_transactions",
		Method:      "TagsListTransactions",
		Title:       "List Tag Transactions",
		Category:    "tags",
		Description: "List transactions carrying one tag, optionally filtered by date range. Returns up to 50 rows.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// BILL TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_bills",
		Method:      "BillsList",
		Title:       "List Bills",
		Category:    "bills",
		Description: "List bills (subscriptions) with expected amounts, frequency, and payment status.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_bill",
		Method:      "BillsGet",
		Title:       "Get Bill",
		Category:    "bills",
		Description: "Fetch one bill by ID, including expected and paid dates.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_bill",
		Method:      "BillsCreate",
		Title:       "Create Bill",
		Category:    "bills",
		Description: "Create a bill. Requires name, minimum and maximum amount, first expected date, and repeat frequency (weekly, monthly, quarterly, half-year, yearly).",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_bill",
		Method:      "BillsUpdate",
		Title:       "Update Bill",
		Category:    "bills",
		Description: "Update a bill's amounts, dates, frequency, or active flag. At least one field must be supplied.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_bill",
		Method:      "BillsDelete",
		Title:       "Delete Bill",
		Category:    "bills",
		Description: "Delete a bill. Its transactions survive but lose the bill link. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_bill_transactions",
		Method:      "BillsListTransactions",
		Title:       "List Bill Transactions",
		Category:    "bills",
		Description: "List transactions linked to one bill, optionally filtered by date range. Returns up to 50 rows.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_bill_rules",
		Method:      "BillsListRules",
		Title:       "List Bill Rules",
		Category:    "bills",
		Description: "List the rules that link incoming transactions to one bill.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// PIGGY BANK TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_piggy_banks",
		Method:      "PiggyBanksList",
		Title:       "List Piggy Banks",
		Category:    "piggybanks",
		Description: "List piggy banks (savings goals) with target and current amounts.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_piggy_bank",
		Method:      "PiggyBanksGet",
		Title:       "Get Piggy Bank",
		Category:    "piggybanks",
		Description: "Fetch one piggy bank by ID, including progress toward the target amount.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_piggy_bank",
		Method:      "PiggyBanksCreate",
		Title:       "Create Piggy Bank",
		Category:    "piggybanks",
		Description: "Create a piggy bank on an asset account. Requires name, account ID, and target amount; optional start and target dates.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_piggy_bank",
		Method:      "PiggyBanksUpdate",
		Title:       "Update Piggy Bank",
		Category:    "piggybanks",
		Description: "Update a piggy bank. Setting current_amount is how money is added to or removed from the goal.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_piggy_bank",
		Method:      "PiggyBanksDelete",
		Title:       "Delete Piggy Bank",
		Category:    "piggybanks",
		Description: "Delete a piggy bank. The money stays in its account. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_piggy_bank_events",
		Method:      "PiggyBanksListEvents",
		Title:       "List Piggy Bank Events",
		Category:    "piggybanks",
		Description: "List the add-money and remove-money events of one piggy bank.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// RULE TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_rule_groups",
		Method:      "RulesListGroups",
		Title:       "List Rule Groups",
		Category:    "rules",
		Description: "List rule groups in processing order.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_rule_group",
		Method:      "RulesGetGroup",
		Title:       "Get Rule Group",
		Category:    "rules",
		Description: "Fetch one rule group by ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_rule_group",
		Method:      "RulesCreateGroup",
		Title:       "Create Rule Group",
		Category:    "rules",
		Description: "Create a rule group. Requires title; optional description and order.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_rule_group",
		Method:      "RulesUpdateGroup",
		Title:       "Update Rule Group",
		Category:    "rules",
		Description: "Update a rule group's title, description, or order.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_rule_group",
		Method:      "RulesDeleteGroup",
		Title:       "Delete Rule Group",
		Category:    "rules",
		Description: "Delete a rule group and the rules in it. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_fire_rule_group",
		Method:      "RulesFireGroup",
		Title:       "Fire Rule Group",
		Category:    "rules",
		Description: "Apply all rules in a group to existing transactions, optionally limited to a date range and account IDs. This modifies matching transactions.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_test_rule_group",
		Method:      "RulesTestGroup",
		Title:       "Test Rule Group",
		Category:    "rules",
		Description: "Dry-run all rules in a group and list the transactions that would match, without changing anything.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_rules",
		Method:      "RulesList",
		Title:       "List Rules",
		Category:    "rules",
		Description: "List all rules with their triggers and actions.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_rule",
		Method:      "RulesGet",
		Title:       "Get Rule",
		Category:    "rules",
		Description: "Fetch one rule by ID with its triggers and actions.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_rule",
		Method:      "RulesCreate",
		Title:       "Create Rule",
		Category:    "rules",
		Description: "Create a rule in a group. Triggers and actions are JSON arrays of {type, value} objects, e.g. [{\"type\":\"description_contains\",\"value\":\"coffee\"}]. Malformed JSON fails before any backend call.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_rule",
		Method:      "RulesUpdate",
		Title:       "Update Rule",
		Category:    "rules",
		Description: "Update a rule's title, triggers, actions, or active flag. Omitted triggers and actions keep their current values.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_rule",
		Method:      "RulesDelete",
		Title:       "Delete Rule",
		Category:    "rules",
		Description: "Delete a rule. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_test_rule",
		Method:      "RulesTest",
		Title:       "Test Rule",
		Category:    "rules",
		Description: "Dry-run one rule and list the transactions that would match, without changing anything.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_trigger_rule",
		Method:      "RulesTrigger",
		Title:       "Trigger Rule",
		Category:    "rules",
		Description: "Apply one rule to existing transactions, optionally limited to a date range and account IDs. This modifies matching transactions.",
		OpenWorld:   true,
	},

	// ==========================================================================
	// RECURRENCE TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_recurrences",
		Method:      "RecurrencesList",
		Title:       "List Recurring Transactions",
		Category:    "recurrences",
		Description: "List recurring transactions with their schedule and template.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_recurrence",
		Method:      "RecurrencesGet",
		Title:       "Get Recurring Transaction",
		Category:    "recurrences",
		Description: "Fetch one recurring transaction by ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_recurrence",
		Method:      "RecurrencesCreate",
		Title:       "Create Recurring Transaction",
		Category:    "recurrences",
		Description: "Create a recurring transaction. Requires title, type (withdrawal, deposit, transfer), amount, description, source and destination (ID or name), frequency (daily, weekly, monthly, yearly), and first date. The repetition moment is derived from the first date.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_recurrence",
		Method:      "RecurrencesUpdate",
		Title:       "Update Recurring Transaction",
		Category:    "recurrences",
		Description: "Update a recurring transaction's title, notes, or active flag.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_recurrence",
		Method:      "RecurrencesDelete",
		Title:       "Delete Recurring Transaction",
		Category:    "recurrences",
		Description: "Delete a recurring transaction. Already-created transactions survive. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_recurrence_transactions",
		Method:      "RecurrencesListTransactions",
		Title:       "List Recurrence Transactions",
		Category:    "recurrences",
		Description: "List the transactions created by one recurring transaction. Returns up to 50 rows.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// WEBHOOK TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_webhooks",
		Method:      "WebhooksList",
		Title:       "List Webhooks",
		Category:    "webhooks",
		Description: "List webhooks with trigger, response type, and delivery URL.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_webhook",
		Method:      "WebhooksGet",
		Title:       "Get Webhook",
		Category:    "webhooks",
		Description: "Fetch one webhook by ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_webhook",
		Method:      "WebhooksCreate",
		Title:       "Create Webhook",
		Category:    "webhooks",
		Description: "Create a webhook. Requires title and an https:// URL; trigger defaults to STORE_TRANSACTION, response to TRANSACTIONS, delivery to JSON.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_webhook",
		Method:      "WebhooksUpdate",
		Title:       "Update Webhook",
		Category:    "webhooks",
		Description: "Update a webhook's title, URL, trigger, response, or active flag.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_webhook",
		Method:      "WebhooksDelete",
		Title:       "Delete Webhook",
		Category:    "webhooks",
		Description: "Delete a webhook and its stored messages. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_submit_webhook",
		Method:      "WebhooksSubmit",
		Title:       "Submit Webhook",
		Category:    "webhooks",
		Description: "Ask Firefly III to (re)send the stored messages of one webhook to its URL.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_webhook_messages",
		Method:      "WebhooksListMessages",
		Title:       "List Webhook Messages",
		Category:    "webhooks",
		Description: "List the stored delivery messages of one webhook.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_webhook_message",
		Method:      "WebhooksGetMessage",
		Title:       "Get Webhook Message",
		Category:    "webhooks",
		Description: "Fetch one stored webhook message by webhook and message ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_webhook_message",
		Method:      "WebhooksDeleteMessage",
		Title:       "Delete Webhook Message",
		Category:    "webhooks",
		Description: "Delete one stored webhook message. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_webhook_attempts",
		Method:      "WebhooksListAttempts",
		Title:       "List Webhook Attempts",
		Category:    "webhooks",
		Description: "List the failed delivery attempts of one webhook message.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_webhook_attempt",
		Method:      "WebhooksGetAttempt",
		Title:       "Get Webhook Attempt",
		Category:    "webhooks",
		Description: "Fetch one delivery attempt by webhook, message, and attempt ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// CURRENCY TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_currencies",
		Method:      "CurrenciesList",
		Title:       "List Currencies",
		Category:    "currencies",
		Description: "List currencies with code, symbol, and enabled/default flags.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_currency",
		Method:      "CurrenciesGet",
		Title:       "Get Currency",
		Category:    "currencies",
		Description: "Fetch one currency by its code, e.g. EUR.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_currency",
		Method:      "CurrenciesCreate",
		Title:       "Create Currency",
		Category:    "currencies",
		Description: "Create a custom currency. Requires code, name, and symbol; decimal places default to 2.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_currency",
		Method:      "CurrenciesUpdate",
		Title:       "Update Currency",
		Category:    "currencies",
		Description: "Update a currency's name, symbol, or decimal places, addressed by code.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_currency",
		Method:      "CurrenciesDelete",
		Title:       "Delete Currency",
		Category:    "currencies",
		Description: "Delete a currency by code. Fails on the backend if the currency is in use. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_enable_currency",
		Method:      "CurrenciesEnable",
		Title:       "Enable Currency",
		Category:    "currencies",
		Description: "Enable a currency so it can be used on accounts and transactions.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_disable_currency",
		Method:      "CurrenciesDisable",
		Title:       "Disable Currency",
		Category:    "currencies",
		Description: "Disable a currency. Fails on the backend if the currency is still in use.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_make_default_currency",
		Method:      "CurrenciesMakeDefault",
		Title:       "Make Default Currency",
		Category:    "currencies",
		Description: "Make a currency the administration's default. The currency is enabled if needed.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_default_currency",
		Method:      "CurrenciesGetDefault",
		Title:       "Get Default Currency",
		Category:    "currencies",
		Description: "Fetch the administration's default currency.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_exchange_rates",
		Method:      "CurrenciesListRates",
		Title:       "List Exchange Rates",
		Category:    "currencies",
		Description: "List stored exchange rates between currency pairs.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_exchange_rate",
		Method:      "CurrenciesGetRate",
		Title:       "Get Exchange Rate",
		Category:    "currencies",
		Description: "List the stored exchange rates between two currency codes, e.g. from EUR to USD.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_exchange_rate",
		Method:      "CurrenciesCreateRate",
		Title:       "Create Exchange Rate",
		Category:    "currencies",
		Description: "Store an exchange rate between two currencies. Requires from, to, and rate; date defaults to today.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_exchange_rate",
		Method:      "CurrenciesUpdateRate",
		Title:       "Update Exchange Rate",
		Category:    "currencies",
		Description: "Change a stored exchange rate by its ID.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_exchange_rate",
		Method:      "CurrenciesDeleteRate",
		Title:       "Delete Exchange Rate",
		Category:    "currencies",
		Description: "Delete a stored exchange rate by its ID. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// LINK TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_link_types",
		Method:      "LinksListTypes",
		Title:       "List Link Types",
		Category:    "links",
		Description: "List transaction link types (e.g. \"paid for\", \"refunds\").",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_link_type",
		Method:      "LinksGetType",
		Title:       "Get Link Type",
		Category:    "links",
		Description: "Fetch one link type by ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_link_type",
		Method:      "LinksCreateType",
		Title:       "Create Link Type",
		Category:    "links",
		Description: "Create a link type. Requires name, inward description, and outward description.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_link_type",
		Method:      "LinksUpdateType",
		Title:       "Update Link Type",
		Category:    "links",
		Description: "Update a link type's name or descriptions. System link types cannot be changed.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_link_type",
		Method:      "LinksDeleteType",
		Title:       "Delete Link Type",
		Category:    "links",
		Description: "Delete a link type and the links using it. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_list_transaction_links",
		Method:      "LinksListLinks",
		Title:       "List Transaction Links",
		Category:    "links",
		Description: "List links between transactions, optionally filtered by link type ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_transaction_link",
		Method:      "LinksGetLink",
		Title:       "Get Transaction Link",
		Category:    "links",
		Description: "Fetch one transaction link by ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_transaction_link",
		Method:      "LinksCreateLink",
		Title:       "Create Transaction Link",
		Category:    "links",
		Description: "Link two transaction journals. Requires link type ID and the inward and outward journal IDs.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_transaction_link",
		Method:      "LinksUpdateLink",
		Title:       "Update Transaction Link",
		Category:    "links",
		Description: "Update a transaction link's type, endpoints, or notes.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_transaction_link",
		Method:      "LinksDeleteLink",
		Title:       "Delete Transaction Link",
		Category:    "links",
		Description: "Delete a transaction link. The linked transactions survive. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// ATTACHMENT TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_attachments",
		Method:      "AttachmentsList",
		Title:       "List Attachments",
		Category:    "attachments",
		Description: "List attachment metadata (filename, title, attached object, size) across the administration.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_attachment",
		Method:      "AttachmentsGet",
		Title:       "Get Attachment",
		Category:    "attachments",
		Description: "Fetch one attachment's metadata by ID. File contents are not downloaded.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_create_attachment",
		Method:      "AttachmentsCreate",
		Title:       "Create Attachment",
		Category:    "attachments",
		Description: "Register attachment metadata on an existing object (TransactionJournal, Bill, Account, ...). The file content is uploaded separately.",
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_attachment",
		Method:      "AttachmentsUpdate",
		Title:       "Update Attachment",
		Category:    "attachments",
		Description: "Update an attachment's filename, title, or notes.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_attachment",
		Method:      "AttachmentsDelete",
		Title:       "Delete Attachment",
		Category:    "attachments",
		Description: "Delete an attachment and its stored file. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_download_attachment",
		Method:      "AttachmentsDownload",
		Title:       "Download Attachment",
		Category:    "attachments",
		Description: "Download an attachment's stored file. The content comes back base64-encoded.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// OBJECT GROUP TOOLS
	// ==========================================================================
	{
		Name:        "firefly_list_object_groups",
		Method:      "ObjectGroupsList",
		Title:       "List Object Groups",
		Category:    "objectgroups",
		Description: "List object groups, the dashboard containers that order bills and piggy banks. Groups are created implicitly by naming one on a bill or piggy bank.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_object_group",
		Method:      "ObjectGroupsGet",
		Title:       "Get Object Group",
		Category:    "objectgroups",
		Description: "Fetch one object group by numeric ID.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_update_object_group",
		Method:      "ObjectGroupsUpdate",
		Title:       "Update Object Group",
		Category:    "objectgroups",
		Description: "Change an object group's title or sort position.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_delete_object_group",
		Method:      "ObjectGroupsDelete",
		Title:       "Delete Object Group",
		Category:    "objectgroups",
		Description: "Delete an object group. Bills and piggy banks in it are detached, not deleted. Requires confirm=true.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:        "firefly_search_all",
		Method:      "SearchAll",
		Title:       "Search Transactions",
		Category:    "search",
		Description: "Full-text search across transactions using the Firefly III query syntax (e.g. \"groceries amount_more:50\"). Returns up to 50 rows.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_search_accounts",
		Method:      "SearchAccounts",
		Title:       "Search Accounts",
		Category:    "search",
		Description: "Search accounts by name, IBAN, or number, optionally restricted to one account type.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_autocomplete_accounts",
		Method:      "SearchAutocompleteAccounts",
		Title:       "Autocomplete Accounts",
		Category:    "search",
		Description: "Suggest account names matching a partial query. Useful for resolving a name before creating a transaction.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_autocomplete_budgets",
		Method:      "SearchAutocompleteBudgets",
		Title:       "Autocomplete Budgets",
		Category:    "search",
		Description: "Suggest budget names matching a partial query.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_autocomplete_categories",
		Method:      "SearchAutocompleteCategories",
		Title:       "Autocomplete Categories",
		Category:    "search",
		Description: "Suggest category names matching a partial query.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_autocomplete_tags",
		Method:      "SearchAutocompleteTags",
		Title:       "Autocomplete Tags",
		Category:    "search",
		Description: "Suggest tags matching a partial query.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_autocomplete_currencies",
		Method:      "SearchAutocompleteCurrencies",
		Title:       "Autocomplete Currencies",
		Category:    "search",
		Description: "Suggest currencies matching a partial query, with codes.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_autocomplete_transactions",
		Method:      "SearchAutocompleteTransactions",
		Title:       "Autocomplete Transactions",
		Category:    "search",
		Description: "Suggest transaction descriptions matching a partial query.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// INSIGHT TOOLS
	// ==========================================================================
	{
		Name:        "firefly_spending_summary",
		Method:      "InsightsSpendingSummary",
		Title:       "Spending Summary",
		Category:    "insights",
		Description: "Group withdrawals by category, budget, tag, or account (group_by, default category) with totals and percentages. The date range defaults to the current calendar month; spending without a key lands in \"(none)\".",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_income_summary",
		Method:      "InsightsIncomeSummary",
		Title:       "Income Summary",
		Category:    "insights",
		Description: "Group deposits by category, budget, tag, or source account (group_by, default category) with totals and percentages. The date range defaults to the current calendar month.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_net_flow_summary",
		Method:      "InsightsNetFlow",
		Title:       "Net Flow Summary",
		Category:    "insights",
		Description: "Report income, expenses, and the net difference for a period. The date range defaults to the current calendar month.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_expense_by_category",
		Method:      "InsightsExpenseByCategory",
		Title:       "Expenses by Category",
		Category:    "insights",
		Description: "Backend expense totals per category for a period, per currency.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_expense_by_budget",
		Method:      "InsightsExpenseByBudget",
		Title:       "Expenses by Budget",
		Category:    "insights",
		Description: "Backend expense totals per budget for a period, per currency.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_expense_by_tag",
		Method:      "InsightsExpenseByTag",
		Title:       "Expenses by Tag",
		Category:    "insights",
		Description: "Backend expense totals per tag for a period, per currency.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_expense_no_category",
		Method:      "InsightsExpenseNoCategory",
		Title:       "Uncategorized Expenses",
		Category:    "insights",
		Description: "Backend totals for expenses without a category for a period.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_expense_no_budget",
		Method:      "InsightsExpenseNoBudget",
		Title:       "Unbudgeted Expenses",
		Category:    "insights",
		Description: "Backend totals for expenses without a budget for a period.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_income_by_category",
		Method:      "InsightsIncomeByCategory",
		Title:       "Income by Category",
		Category:    "insights",
		Description: "Backend income totals per category for a period, per currency.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_basic_summary",
		Method:      "InsightsBasicSummary",
		Title:       "Basic Summary",
		Category:    "insights",
		Description: "The Firefly III dashboard summary for a period: balance, spent, earned, bills, net worth, left to spend.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// CHART TOOLS
	// ==========================================================================
	{
		Name:        "firefly_get_chart_account_overview",
		Method:      "ChartsAccountOverview",
		Title:       "Account Overview Chart",
		Category:    "charts",
		Description: "Dashboard chart data: daily balances per asset account over a period. Both dates are required.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_chart_balance",
		Method:      "ChartsBalance",
		Title:       "Balance Chart",
		Category:    "charts",
		Description: "Chart data for account balances over a period, optionally limited to specific accounts.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_chart_budget_overview",
		Method:      "ChartsBudgetOverview",
		Title:       "Budget Overview Chart",
		Category:    "charts",
		Description: "Chart data: spending per budget over a period.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_get_chart_category_overview",
		Method:      "ChartsCategoryOverview",
		Title:       "Category Overview Chart",
		Category:    "charts",
		Description: "Chart data: spending per category over a period.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// DATA TOOLS
	// ==========================================================================
	{
		Name:        "firefly_export_accounts",
		Method:      "DataExportAccounts",
		Title:       "Export Accounts",
		Category:    "data",
		Description: "Export all accounts as CSV.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_export_transactions",
		Method:      "DataExportTransactions",
		Title:       "Export Transactions",
		Category:    "data",
		Description: "Export transactions as CSV, optionally limited by date range and account IDs.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_export_bills",
		Method:      "DataExportBills",
		Title:       "Export Bills",
		Category:    "data",
		Description: "Export all bills as CSV.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_export_budgets",
		Method:      "DataExportBudgets",
		Title:       "Export Budgets",
		Category:    "data",
		Description: "Export all budgets as CSV.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_export_categories",
		Method:      "DataExportCategories",
		Title:       "Export Categories",
		Category:    "data",
		Description: "Export all categories as CSV.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_export_piggy_banks",
		Method:      "DataExportPiggyBanks",
		Title:       "Export Piggy Banks",
		Category:    "data",
		Description: "Export all piggy banks as CSV.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_export_recurring",
		Method:      "DataExportRecurring",
		Title:       "Export Recurring Transactions",
		Category:    "data",
		Description: "Export all recurring transactions as CSV.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_export_rules",
		Method:      "DataExportRules",
		Title:       "Export Rules",
		Category:    "data",
		Description: "Export all rules as CSV.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_export_tags",
		Method:      "DataExportTags",
		Title:       "Export Tags",
		Category:    "data",
		Description: "Export all tags as CSV.",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_bulk_update_transactions",
		Method:      "DataBulkUpdateTransactions",
		Title:       "Bulk Update Transactions",
		Category:    "data",
		Description: "Apply one change to every transaction matching a query, e.g. move all transactions from one account to another. The query is a JSON literal with where and update clauses.",
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_destroy_data",
		Method:      "DataDestroy",
		Title:       "Destroy Data",
		Category:    "data",
		Description: "Delete ALL records of one object class (budgets, tags, transactions, ...). Requires confirm=true; without it the tool returns a warning and makes no backend call.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:        "firefly_purge_data",
		Method:      "DataPurge",
		Title:       "Purge Data",
		Category:    "data",
		Description: "Permanently erase soft-deleted records. Cannot be undone. Requires BOTH confirm=true and acknowledge_irreversible=true; anything less returns a warning and makes no backend call.",
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
}
