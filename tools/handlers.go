package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/akarpova/firefly-mcp-server/internal/accounts"
	"github.com/akarpova/firefly-mcp-server/internal/attachments"
	"github.com/akarpova/firefly-mcp-server/internal/bills"
	"github.com/akarpova/firefly-mcp-server/internal/budgets"
	"github.com/akarpova/firefly-mcp-server/internal/categories"
	"github.com/akarpova/firefly-mcp-server/internal/charts"
	"github.com/akarpova/firefly-mcp-server/internal/currencies"
	"github.com/akarpova/firefly-mcp-server/internal/data"
	"github.com/akarpova/firefly-mcp-server/internal/insights"
	"github.com/akarpova/firefly-mcp-server/internal/links"
	"github.com/akarpova/firefly-mcp-server/internal/objectgroups"
	"github.com/akarpova/firefly-mcp-server/internal/piggybanks"
	"github.com/akarpova/firefly-mcp-server/internal/recurrences"
	"github.com/akarpova/firefly-mcp-server/internal/results"
	"github.com/akarpova/firefly-mcp-server/internal/rules"
	"github.com/akarpova/firefly-mcp-server/internal/search"
	"github.com/akarpova/firefly-mcp-server/internal/system"
	"github.com/akarpova/firefly-mcp-server/internal/tags"
	"github.com/akarpova/firefly-mcp-server/internal/transactions"
	"github.com/akarpova/firefly-mcp-server/internal/webhooks"
	"github.com/akarpova/firefly-mcp-server/metrics"
	"github.com/akarpova/firefly-mcp-server/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Clients bundles the domain clients the tool catalogue dispatches to.
// All of them share one *firefly.Client underneath.
type Clients struct {
	System       *system.Client
	Accounts     *accounts.Client
	Transactions *transactions.Client
	Budgets      *budgets.Client
	Categories   *categories.Client
	Tags         *tags.Client
	Bills        *bills.Client
	PiggyBanks   *piggybanks.Client
	Rules        *rules.Client
	Recurrences  *recurrences.Client
	Webhooks     *webhooks.Client
	Currencies   *currencies.Client
	Links        *links.Client
	Attachments  *attachments.Client
	ObjectGroups *objectgroups.Client
	Search       *search.Client
	Insights     *insights.Client
	Charts       *charts.Client
	Data         *data.Client
}

// HandlerRegistry provides type-safe tool registration by mapping
// tool specs to their concrete handler implementations.
type HandlerRegistry struct {
	clients Clients
	logger  *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(clients Clients, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{clients: clients, logger: logger}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)
	c := h.clients

	switch spec.Method {
	// System tools
	case "SystemHealthCheck":
		register(h, server, tool, spec, c.System.HealthCheck)
	case "SystemInfo":
		register(h, server, tool, spec, c.System.SystemInfo)
	case "SystemCron":
		register(h, server, tool, spec, c.System.Cron)
	case "SystemListConfig":
		register(h, server, tool, spec, c.System.ListConfig)
	case "SystemGetConfig":
		register(h, server, tool, spec, c.System.GetConfig)
	case "SystemSetConfig":
		register(h, server, tool, spec, c.System.SetConfig)
	case "SystemListPreferences":
		register(h, server, tool, spec, c.System.ListPreferences)
	case "SystemGetPreference":
		register(h, server, tool, spec, c.System.GetPreference)
	case "SystemCreatePreference":
		register(h, server, tool, spec, c.System.CreatePreference)
	case "SystemUpdatePreference":
		register(h, server, tool, spec, c.System.UpdatePreference)
	case "SystemListUsers":
		register(h, server, tool, spec, c.System.ListUsers)
	case "SystemGetUser":
		register(h, server, tool, spec, c.System.GetUser)
	case "SystemDeleteUser":
		register(h, server, tool, spec, c.System.DeleteUser)
	case "SystemListUserGroups":
		register(h, server, tool, spec, c.System.ListUserGroups)
	case "SystemGetUserGroup":
		register(h, server, tool, spec, c.System.GetUserGroup)
	case "SystemRawRequest":
		register(h, server, tool, spec, c.System.RawRequest)

	// Account tools
	case "AccountsList":
		register(h, server, tool, spec, c.Accounts.List)
	case "AccountsGet":
		register(h, server, tool, spec, c.Accounts.Get)
	case "AccountsCreate":
		register(h, server, tool, spec, c.Accounts.Create)
	case "AccountsUpdate":
		register(h, server, tool, spec, c.Accounts.Update)
	case "AccountsDelete":
		register(h, server, tool, spec, c.Accounts.Delete)
	case "AccountsListTransactions":
		register(h, server, tool, spec, c.Accounts.ListTransactions)
	case "AccountsListAttachments":
		register(h, server, tool, spec, c.Accounts.ListAttachments)
	case "AccountsListPiggyBanks":
		register(h, server, tool, spec, c.Accounts.ListPiggyBanks)

	// Transaction tools
	case "TransactionsList":
		register(h, server, tool, spec, c.Transactions.List)
	case "TransactionsGet":
		register(h, server, tool, spec, c.Transactions.Get)
	case "TransactionsCreateWithdrawal":
		register(h, server, tool, spec, c.Transactions.CreateWithdrawal)
	case "TransactionsCreateDeposit":
		register(h, server, tool, spec, c.Transactions.CreateDeposit)
	case "TransactionsCreateTransfer":
		register(h, server, tool, spec, c.Transactions.CreateTransfer)
	case "TransactionsUpdate":
		register(h, server, tool, spec, c.Transactions.Update)
	case "TransactionsDelete":
		register(h, server, tool, spec, c.Transactions.Delete)
	case "TransactionsDeleteJournal":
		register(h, server, tool, spec, c.Transactions.DeleteJournal)
	case "TransactionsGetByJournal":
		register(h, server, tool, spec, c.Transactions.GetByJournal)

	// Budget tools
	case "BudgetsList":
		register(h, server, tool, spec, c.Budgets.List)
	case "BudgetsGet":
		register(h, server, tool, spec, c.Budgets.Get)
	case "BudgetsCreate":
		register(h, server, tool, spec, c.Budgets.Create)
	case "BudgetsUpdate":
		register(h, server, tool, spec, c.Budgets.Update)
	case "BudgetsDelete":
		register(h, server, tool, spec, c.Budgets.Delete)
	case "BudgetsListLimits":
		register(h, server, tool, spec, c.Budgets.ListLimits)
	case "BudgetsGetLimit":
		register(h, server, tool, spec, c.Budgets.GetLimit)
	case "BudgetsCreateLimit":
		register(h, server, tool, spec, c.Budgets.CreateLimit)
	case "BudgetsUpdateLimit":
		register(h, server, tool, spec, c.Budgets.UpdateLimit)
	case "BudgetsDeleteLimit":
		register(h, server, tool, spec, c.Budgets.DeleteLimit)
	case "BudgetsSpending":
		register(h, server, tool, spec, c.Budgets.Spending)
	case "BudgetsWithoutBudget":
		register(h, server, tool, spec, c.Budgets.WithoutBudget)
	case "BudgetsListAvailable":
		register(h, server, tool, spec, c.Budgets.ListAvailable)
	case "BudgetsGetAvailable":
		register(h, server, tool, spec, c.Budgets.GetAvailable)
	case "BudgetsCreateAvailable":
		register(h, server, tool, spec, c.Budgets.CreateAvailable)
	case "BudgetsUpdateAvailable":
		register(h, server, tool, spec, c.Budgets.UpdateAvailable)
	case "BudgetsDeleteAvailable":
		register(h, server, tool, spec, c.Budgets.DeleteAvailable)

	// Category tools
	case "CategoriesList":
		register(h, server, tool, spec, c.Categories.List)
	case "CategoriesGet":
		register(h, server, tool, spec, c.Categories.Get)
	case "CategoriesCreate":
		register(h, server, tool, spec, c.Categories.Create)
	case "CategoriesUpdate":
		register(h, server, tool, spec, c.Categories.Update)
	case "CategoriesDelete":
		register(h, server, tool, spec, c.Categories.Delete)
	case "CategoriesListTransactions":
		register(h, server, tool, spec, c.Categories.ListTransactions)

	// Tag tools
	case "TagsList":
		register(h, server, tool, spec, c.Tags.List)
	case "TagsGet":
		register(h, server, tool, spec, c.Tags.Get)
	case "TagsCreate":
		register(h, server, tool, spec, c.Tags.Create)
	case "TagsUpdate":
		register(h, server, tool, spec, c.Tags.Update)
	case "TagsDelete":
		register(h, server, tool, spec, c.Tags.Delete)
	case "TagsListTransactions":
		register(h, server, tool, spec, c.Tags.ListTransactions)

	// Bill tools
	case "BillsList":
		register(h, server, tool, spec, c.Bills.List)
	case "BillsGet":
		register(h, server, tool, spec, c.Bills.Get)
	case "BillsCreate":
		register(h, server, tool, spec, c.Bills.Create)
	case "BillsUpdate":
		register(h, server, tool, spec, c.Bills.Update)
	case "BillsDelete":
		register(h, server, tool, spec, c.Bills.Delete)
	case "BillsListTransactions":
		register(h, server, tool, spec, c.Bills.ListTransactions)
	case "BillsListRules":
		register(h, server, tool, spec, c.Bills.ListRules)

	// Piggy bank tools
	case "PiggyBanksList":
		register(h, server, tool, spec, c.PiggyBanks.List)
	case "PiggyBanksGet":
		register(h, server, tool, spec, c.PiggyBanks.Get)
	case "PiggyBanksCreate":
		register(h, server, tool, spec, c.PiggyBanks.Create)
	case "PiggyBanksUpdate":
		register(h, server, tool, spec, c.PiggyBanks.Update)
	case "PiggyBanksDelete":
		register(h, server, tool, spec, c.PiggyBanks.Delete)
	case "PiggyBanksListEvents":
		register(h, server, tool, spec, c.PiggyBanks.ListEvents)

	// Rule tools
	case "RulesListGroups":
		register(h, server, tool, spec, c.Rules.ListGroups)
	case "RulesGetGroup":
		register(h, server, tool, spec, c.Rules.GetGroup)
	case "RulesCreateGroup":
		register(h, server, tool, spec, c.Rules.CreateGroup)
	case "RulesUpdateGroup":
		register(h, server, tool, spec, c.Rules.UpdateGroup)
	case "RulesDeleteGroup":
		register(h, server, tool, spec, c.Rules.DeleteGroup)
	case "RulesFireGroup":
		register(h, server, tool, spec, c.Rules.FireGroup)
	case "RulesTestGroup":
		register(h, server, tool, spec, c.Rules.TestGroup)
	case "RulesList":
		register(h, server, tool, spec, c.Rules.List)
	case "RulesGet":
		register(h, server, tool, spec, c.Rules.Get)
	case "RulesCreate":
		register(h, server, tool, spec, c.Rules.Create)
	case "RulesUpdate":
		register(h, server, tool, spec, c.Rules.Update)
	case "RulesDelete":
		register(h, server, tool, spec, c.Rules.Delete)
	case "RulesTest":
		register(h, server, tool, spec, c.Rules.Test)
	case "RulesTrigger":
		register(h, server, tool, spec, c.Rules.Trigger)

	// Recurrence tools
	case "RecurrencesList":
		register(h, server, tool, spec, c.Recurrences.List)
	case "RecurrencesGet":
		register(h, server, tool, spec, c.Recurrences.Get)
	case "RecurrencesCreate":
		register(h, server, tool, spec, c.Recurrences.Create)
	case "RecurrencesUpdate":
		register(h, server, tool, spec, c.Recurrences.Update)
	case "RecurrencesDelete":
		register(h, server, tool, spec, c.Recurrences.Delete)
	case "RecurrencesListTransactions":
		register(h, server, tool, spec, c.Recurrences.ListTransactions)

	// Webhook tools
	case "WebhooksList":
		register(h, server, tool, spec, c.Webhooks.List)
	case "WebhooksGet":
		register(h, server, tool, spec, c.Webhooks.Get)
	case "WebhooksCreate":
		register(h, server, tool, spec, c.Webhooks.Create)
	case "WebhooksUpdate":
		register(h, server, tool, spec, c.Webhooks.Update)
	case "WebhooksDelete":
		register(h, server, tool, spec, c.Webhooks.Delete)
	case "WebhooksSubmit":
		register(h, server, tool, spec, c.Webhooks.Submit)
	case "WebhooksListMessages":
		register(h, server, tool, spec, c.Webhooks.ListMessages)
	case "WebhooksGetMessage":
		register(h, server, tool, spec, c.Webhooks.GetMessage)
	case "WebhooksDeleteMessage":
		register(h, server, tool, spec, c.Webhooks.DeleteMessage)
	case "WebhooksListAttempts":
		register(h, server, tool, spec, c.Webhooks.ListAttempts)
	case "WebhooksGetAttempt":
		register(h, server, tool, spec, c.Webhooks.GetAttempt)

	// Currency tools
	case "CurrenciesList":
		register(h, server, tool, spec, c.Currencies.List)
	case "CurrenciesGet":
		register(h, server, tool, spec, c.Currencies.Get)
	case "CurrenciesCreate":
		register(h, server, tool, spec, c.Currencies.Create)
	case "CurrenciesUpdate":
		register(h, server, tool, spec, c.Currencies.Update)
	case "CurrenciesDelete":
		register(h, server, tool, spec, c.Currencies.Delete)
	case "CurrenciesEnable":
		register(h, server, tool, spec, c.Currencies.Enable)
	case "CurrenciesDisable":
		register(h, server, tool, spec, c.Currencies.Disable)
	case "CurrenciesMakeDefault":
		register(h, server, tool, spec, c.Currencies.MakeDefault)
	case "CurrenciesGetDefault":
		register(h, server, tool, spec, c.Currencies.GetDefault)
	case "CurrenciesListRates":
		register(h, server, tool, spec, c.Currencies.ListRates)
	case "CurrenciesGetRate":
		register(h, server, tool, spec, c.Currencies.GetRate)
	case "CurrenciesCreateRate":
		register(h, server, tool, spec, c.Currencies.CreateRate)
	case "CurrenciesUpdateRate":
		register(h, server, tool, spec, c.Currencies.UpdateRate)
	case "CurrenciesDeleteRate":
		register(h, server, tool, spec, c.Currencies.DeleteRate)

	// Link tools
	case "LinksListTypes":
		register(h, server, tool, spec, c.Links.ListTypes)
	case "LinksGetType":
		register(h, server, tool, spec, c.Links.GetType)
	case "LinksCreateType":
		register(h, server, tool, spec, c.Links.CreateType)
	case "LinksUpdateType":
		register(h, server, tool, spec, c.Links.UpdateType)
	case "LinksDeleteType":
		register(h, server, tool, spec, c.Links.DeleteType)
	case "LinksListLinks":
		register(h, server, tool, spec, c.Links.ListLinks)
	case "LinksGetLink":
		register(h, server, tool, spec, c.Links.GetLink)
	case "LinksCreateLink":
		register(h, server, tool, spec, c.Links.CreateLink)
	case "LinksUpdateLink":
		register(h, server, tool, spec, c.Links.UpdateLink)
	case "LinksDeleteLink":
		register(h, server, tool, spec, c.Links.DeleteLink)

	// Attachment tools
	case "AttachmentsList":
		register(h, server, tool, spec, c.Attachments.List)
	case "AttachmentsGet":
		register(h, server, tool, spec, c.Attachments.Get)
	case "AttachmentsCreate":
		register(h, server, tool, spec, c.Attachments.Create)
	case "AttachmentsUpdate":
		register(h, server, tool, spec, c.Attachments.Update)
	case "AttachmentsDelete":
		register(h, server, tool, spec, c.Attachments.Delete)
	case "AttachmentsDownload":
		register(h, server, tool, spec, c.Attachments.Download)

	// Object group tools
	case "ObjectGroupsList":
		register(h, server, tool, spec, c.ObjectGroups.List)
	case "ObjectGroupsGet":
		register(h, server, tool, spec, c.ObjectGroups.Get)
	case "ObjectGroupsUpdate":
		register(h, server, tool, spec, c.ObjectGroups.Update)
	case "ObjectGroupsDelete":
		register(h, server, tool, spec, c.ObjectGroups.Delete)

	// Search tools
	case "SearchAll":
		register(h, server, tool, spec, c.Search.SearchAll)
	case "SearchAccounts":
		register(h, server, tool, spec, c.Search.SearchAccounts)
	case "SearchAutocompleteAccounts":
		register(h, server, tool, spec, c.Search.AutocompleteAccounts)
	case "SearchAutocompleteBudgets":
		register(h, server, tool, spec, c.Search.AutocompleteBudgets)
	case "SearchAutocompleteCategories":
		register(h, server, tool, spec, c.Search.AutocompleteCategories)
	case "SearchAutocompleteTags":
		register(h, server, tool, spec, c.Search.AutocompleteTags)
	case "SearchAutocompleteCurrencies":
		register(h, server, tool, spec, c.Search.AutocompleteCurrencies)
	case "SearchAutocompleteTransactions":
		register(h, server, tool, spec, c.Search.AutocompleteTransactions)

	// Insight tools
	case "InsightsSpendingSummary":
		register(h, server, tool, spec, c.Insights.SpendingSummary)
	case "InsightsIncomeSummary":
		register(h, server, tool, spec, c.Insights.IncomeSummary)
	case "InsightsNetFlow":
		register(h, server, tool, spec, c.Insights.NetFlow)
	case "InsightsExpenseByCategory":
		register(h, server, tool, spec, c.Insights.ExpenseByCategory)
	case "InsightsExpenseByBudget":
		register(h, server, tool, spec, c.Insights.ExpenseByBudget)
	case "InsightsExpenseByTag":
		register(h, server, tool, spec, c.Insights.ExpenseByTag)
	case "InsightsExpenseNoCategory":
		register(h, server, tool, spec, c.Insights.ExpenseNoCategory)
	case "InsightsExpenseNoBudget":
		register(h, server, tool, spec, c.Insights.ExpenseNoBudget)
	case "InsightsIncomeByCategory":
		register(h, server, tool, spec, c.Insights.IncomeByCategory)
	case "InsightsBasicSummary":
		register(h, server, tool, spec, c.Insights.BasicSummary)

	// Chart tools
	case "ChartsAccountOverview":
		register(h, server, tool, spec, c.Charts.AccountOverview)
	case "ChartsBalance":
		register(h, server, tool, spec, c.Charts.Balance)
	case "ChartsBudgetOverview":
		register(h, server, tool, spec, c.Charts.BudgetOverview)
	case "ChartsCategoryOverview":
		register(h, server, tool, spec, c.Charts.CategoryOverview)

	// Data tools
	case "DataExportAccounts":
		register(h, server, tool, spec, c.Data.ExportAccounts)
	case "DataExportTransactions":
		register(h, server, tool, spec, c.Data.ExportTransactions)
	case "DataExportBills":
		register(h, server, tool, spec, c.Data.ExportBills)
	case "DataExportBudgets":
		register(h, server, tool, spec, c.Data.ExportBudgets)
	case "DataExportCategories":
		register(h, server, tool, spec, c.Data.ExportCategories)
	case "DataExportPiggyBanks":
		register(h, server, tool, spec, c.Data.ExportPiggyBanks)
	case "DataExportRecurring":
		register(h, server, tool, spec, c.Data.ExportRecurring)
	case "DataExportRules":
		register(h, server, tool, spec, c.Data.ExportRules)
	case "DataExportTags":
		register(h, server, tool, spec, c.Data.ExportTags)
	case "DataBulkUpdateTransactions":
		register(h, server, tool, spec, c.Data.BulkUpdateTransactions)
	case "DataDestroy":
		register(h, server, tool, spec, c.Data.DestroyData)
	case "DataPurge":
		register(h, server, tool, spec, c.Data.PurgeData)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details. Common arg and result shapes
// contribute extra attributes; anything else logs name and category only.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	switch a := args.(type) {
	case search.SearchAllArgs:
		attrs = append(attrs, "query", a.Query)
	case search.SearchAccountsArgs:
		attrs = append(attrs, "query", a.Query)
	case search.AutocompleteArgs:
		attrs = append(attrs, "query", a.Query)
	case transactions.CreateArgs:
		attrs = append(attrs, "amount", a.Amount)
	case data.DestroyArgs:
		attrs = append(attrs, "objects", a.Objects)
	}

	switch r := result.(type) {
	case transactions.ListResult:
		attrs = append(attrs, "results_count", r.Count)
	case accounts.ListResult:
		attrs = append(attrs, "results_count", r.Count)
	case search.AutocompleteResult:
		attrs = append(attrs, "results_count", r.Count)
	case insights.SummaryResult:
		attrs = append(attrs, "groups", len(r.Groups), "total", r.Total)
	case transactions.CreateResult:
		attrs = append(attrs, "id", r.ID)
	case results.Deletion:
		attrs = append(attrs, "deleted", r.Deleted)
	}

	h.logger.Info("Tool executed", attrs...)
}
