// Package currencies exposes the Firefly III currency and exchange rate
// endpoints as MCP tool methods. Currencies are addressed by ISO code,
// exchange rates by numeric ID.
package currencies

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/akarpova/firefly-mcp-server/internal/coerce"
	apierrors "github.com/akarpova/firefly-mcp-server/internal/errors"
	"github.com/akarpova/firefly-mcp-server/internal/firefly"
	"github.com/akarpova/firefly-mcp-server/internal/results"
)

// Client provides currency tools backed by the shared Firefly III client.
type Client struct {
	api *firefly.Client
	now func() time.Time
}

// NewClient creates a currencies client.
func NewClient(api *firefly.Client) *Client {
	return &Client{api: api, now: time.Now}
}

func codePath(code string) string {
	return "/currencies/" + url.PathEscape(strings.ToUpper(strings.TrimSpace(code)))
}

// List lists all currencies known to the backend.
func (c *Client) List(ctx context.Context, _ ListArgs) (ListResult, error) {
	res, err := firefly.List[Attributes](ctx, c.api, "/currencies", nil)
	if err != nil {
		return ListResult{}, err
	}
	summaries := make([]Summary, 0, len(res.Data))
	for _, obj := range res.Data {
		summaries = append(summaries, Summary{
			ID:      obj.ID,
			Code:    obj.Attributes.Code,
			Name:    obj.Attributes.Name,
			Symbol:  obj.Attributes.Symbol,
			Enabled: obj.Attributes.Enabled,
			Default: obj.Attributes.Default,
		})
	}
	out := ListResult{Currencies: summaries, Count: len(summaries)}
	if len(summaries) == 0 {
		out.Message = results.NoneFound("currencies")
	}
	return out, nil
}

// Get fetches one currency by code.
func (c *Client) Get(ctx context.Context, args GetArgs) (GetResult, error) {
	if coerce.Blank(args.Code) {
		return GetResult{}, apierrors.NewRequiredError("code")
	}
	res, err := firefly.Get[Attributes](ctx, c.api, codePath(args.Code))
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Currency: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Create creates a custom currency.
func (c *Client) Create(ctx context.Context, args CreateArgs) (CreateResult, error) {
	if coerce.Blank(args.Code) {
		return CreateResult{}, apierrors.NewRequiredError("code")
	}
	if coerce.Blank(args.Name) {
		return CreateResult{}, apierrors.NewRequiredError("name")
	}
	if coerce.Blank(args.Symbol) {
		return CreateResult{}, apierrors.NewRequiredError("symbol")
	}
	req := currencyRequest{Code: strings.ToUpper(strings.TrimSpace(args.Code)), Name: args.Name, Symbol: args.Symbol}
	if args.DecimalPlaces > 0 {
		req.DecimalPlaces = &args.DecimalPlaces
	}
	res, err := firefly.Post[Attributes](ctx, c.api, "/currencies", req)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Currency: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Update applies a partial update to a currency.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (UpdateResult, error) {
	if coerce.Blank(args.Code) {
		return UpdateResult{}, apierrors.NewRequiredError("code")
	}
	if coerce.Blank(args.Name) && coerce.Blank(args.Symbol) {
		return UpdateResult{}, apierrors.NewValidationError("", "at least one field must be supplied")
	}
	res, err := firefly.Put[Attributes](ctx, c.api, codePath(args.Code), currencyRequest{
		Name:   args.Name,
		Symbol: args.Symbol,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Currency: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// Delete removes a currency. The backend refuses while the currency is in
// use.
func (c *Client) Delete(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	if coerce.Blank(args.Code) {
		return DeleteResult{}, apierrors.NewRequiredError("code")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("currency"), nil
	}
	if err := firefly.Delete(ctx, c.api, codePath(args.Code)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(strings.ToUpper(strings.TrimSpace(args.Code))), nil
}

// Enable makes a currency selectable.
func (c *Client) Enable(ctx context.Context, args CodeArgs) (ToggleResult, error) {
	return c.toggle(ctx, args, "enable", "enabled")
}

// Disable hides a currency. The backend refuses while the currency is in
// use.
func (c *Client) Disable(ctx context.Context, args CodeArgs) (ToggleResult, error) {
	return c.toggle(ctx, args, "disable", "disabled")
}

// MakeDefault sets the administration's default currency.
func (c *Client) MakeDefault(ctx context.Context, args CodeArgs) (ToggleResult, error) {
	return c.toggle(ctx, args, "default", "set as default")
}

func (c *Client) toggle(ctx context.Context, args CodeArgs, action, verb string) (ToggleResult, error) {
	if coerce.Blank(args.Code) {
		return ToggleResult{}, apierrors.NewRequiredError("code")
	}
	var res firefly.Single[Attributes]
	if err := c.api.Do(ctx, "POST", codePath(args.Code)+"/"+action, nil, nil, &res); err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{
		Currency: detailOf(res.Data.ID, res.Data.Attributes),
		Message:  "currency " + res.Data.Attributes.Code + " " + verb,
	}, nil
}

// GetDefault fetches the administration's default currency.
func (c *Client) GetDefault(ctx context.Context, _ GetDefaultArgs) (GetResult, error) {
	res, err := firefly.Get[Attributes](ctx, c.api, "/currencies/default")
	if err != nil {
		return GetResult{}, err
	}
	return GetResult{Currency: detailOf(res.Data.ID, res.Data.Attributes)}, nil
}

// ListRates lists stored exchange rates.
func (c *Client) ListRates(ctx context.Context, _ ListRatesArgs) (ListRatesResult, error) {
	res, err := firefly.List[RateAttributes](ctx, c.api, "/exchange-rates", nil)
	if err != nil {
		return ListRatesResult{}, err
	}
	rates := make([]Rate, 0, len(res.Data))
	for _, obj := range res.Data {
		rates = append(rates, rateOf(obj.ID, obj.Attributes))
	}
	out := ListRatesResult{Rates: rates, Count: len(rates)}
	if len(rates) == 0 {
		out.Message = results.NoneFound("exchange rates")
	}
	return out, nil
}

// GetRate lists the stored rates for one currency pair.
func (c *Client) GetRate(ctx context.Context, args GetRateArgs) (GetRateResult, error) {
	if coerce.Blank(args.From) {
		return GetRateResult{}, apierrors.NewRequiredError("from")
	}
	if coerce.Blank(args.To) {
		return GetRateResult{}, apierrors.NewRequiredError("to")
	}
	from := url.PathEscape(strings.ToUpper(strings.TrimSpace(args.From)))
	to := url.PathEscape(strings.ToUpper(strings.TrimSpace(args.To)))
	res, err := firefly.List[RateAttributes](ctx, c.api, "/exchange-rates/rates/"+from+"/"+to, nil)
	if err != nil {
		return GetRateResult{}, err
	}
	rates := make([]Rate, 0, len(res.Data))
	for _, obj := range res.Data {
		rates = append(rates, rateOf(obj.ID, obj.Attributes))
	}
	out := GetRateResult{Rates: rates, Count: len(rates)}
	if len(rates) == 0 {
		out.Message = results.NoneFound("exchange rates")
	}
	return out, nil
}

// CreateRate stores an exchange rate for a currency pair.
func (c *Client) CreateRate(ctx context.Context, args CreateRateArgs) (CreateRateResult, error) {
	if coerce.Blank(args.From) {
		return CreateRateResult{}, apierrors.NewRequiredError("from")
	}
	if coerce.Blank(args.To) {
		return CreateRateResult{}, apierrors.NewRequiredError("to")
	}
	if coerce.Blank(args.Rate) {
		return CreateRateResult{}, apierrors.NewRequiredError("rate")
	}
	res, err := firefly.Post[RateAttributes](ctx, c.api, "/exchange-rates", rateRequest{
		From: strings.ToUpper(strings.TrimSpace(args.From)),
		To:   strings.ToUpper(strings.TrimSpace(args.To)),
		Rate: args.Rate,
		Date: coerce.DateOrDefault(args.Date, c.now()),
	})
	if err != nil {
		return CreateRateResult{}, err
	}
	return CreateRateResult{Rate: rateOf(res.Data.ID, res.Data.Attributes)}, nil
}

// UpdateRate changes a stored exchange rate.
func (c *Client) UpdateRate(ctx context.Context, args UpdateRateArgs) (UpdateRateResult, error) {
	if coerce.Blank(args.RateID) {
		return UpdateRateResult{}, apierrors.NewRequiredError("rate_id")
	}
	if coerce.Blank(args.Rate) {
		return UpdateRateResult{}, apierrors.NewRequiredError("rate")
	}
	res, err := firefly.Put[RateAttributes](ctx, c.api, "/exchange-rates/"+url.PathEscape(args.RateID), rateRequest{Rate: args.Rate})
	if err != nil {
		return UpdateRateResult{}, err
	}
	return UpdateRateResult{Rate: rateOf(res.Data.ID, res.Data.Attributes)}, nil
}

// DeleteRate removes a stored exchange rate.
func (c *Client) DeleteRate(ctx context.Context, args DeleteRateArgs) (DeleteResult, error) {
	if coerce.Blank(args.RateID) {
		return DeleteResult{}, apierrors.NewRequiredError("rate_id")
	}
	if !args.Confirm {
		return results.NeedsConfirmation("exchange rate"), nil
	}
	if err := firefly.Delete(ctx, c.api, "/exchange-rates/"+url.PathEscape(args.RateID)); err != nil {
		return DeleteResult{}, err
	}
	return results.Deleted(args.RateID), nil
}
