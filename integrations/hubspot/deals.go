package hubspot

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

func (c *Client) GetDeal(ctx context.Context, dealID string, properties []string) (*Object, error) {
	path := fmt.Sprintf("/crm/v3/objects/deals/%s", url.PathEscape(dealID))
	if len(properties) > 0 {
		path += "?properties=" + url.QueryEscape(strings.Join(properties, ","))
	}

	deal := &Object{}
	if err := c.doJSON(ctx, "GET", path, nil, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (c *Client) BatchReadDeals(ctx context.Context, dealIDs []string, properties []string) ([]Object, error) {
	inputs := make([]map[string]string, 0, len(dealIDs))
	for _, id := range dealIDs {
		inputs = append(inputs, map[string]string{"id": id})
	}

	body := map[string]any{
		"inputs":     inputs,
		"properties": properties,
	}

	result := struct {
		Results []Object `json:"results"`
	}{}
	if err := c.doJSON(ctx, "POST", "/crm/v3/objects/deals/batch/read", body, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// GetDealQuotes resuelve las asociaciones v4 del negocio y lee las
// cotizaciones asociadas en lote.
func (c *Client) GetDealQuotes(ctx context.Context, dealID string) ([]Object, error) {
	assocPath := fmt.Sprintf("/crm/v4/objects/deals/%s/associations/quotes", url.PathEscape(dealID))

	assoc := struct {
		Results []struct {
			ToObjectID int64 `json:"toObjectId"`
		} `json:"results"`
	}{}
	if err := c.doJSON(ctx, "GET", assocPath, nil, &assoc); err != nil {
		return nil, err
	}

	if len(assoc.Results) == 0 {
		return []Object{}, nil
	}

	quoteIDs := make([]string, 0, len(assoc.Results))
	for _, result := range assoc.Results {
		quoteIDs = append(quoteIDs, fmt.Sprintf("%d", result.ToObjectID))
	}

	inputs := make([]map[string]string, 0, len(quoteIDs))
	for _, id := range quoteIDs {
		inputs = append(inputs, map[string]string{"id": id})
	}

	body := map[string]any{
		"inputs":     inputs,
		"properties": []string{"hs_title", "hs_quote_amount", "hs_currency", "hs_status", "hs_expiration_date"},
	}

	quotes := struct {
		Results []Object `json:"results"`
	}{}
	if err := c.doJSON(ctx, "POST", "/crm/v3/objects/quotes/batch/read", body, &quotes); err != nil {
		return nil, err
	}
	return quotes.Results, nil
}
