package hubspot

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

func (c *Client) GetContact(ctx context.Context, contactID string, properties []string) (*Object, error) {
	path := fmt.Sprintf("/crm/v3/objects/contacts/%s", url.PathEscape(contactID))
	if len(properties) > 0 {
		path += "?properties=" + url.QueryEscape(strings.Join(properties, ","))
	}

	contact := &Object{}
	if err := c.doJSON(ctx, "GET", path, nil, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (c *Client) BatchReadContacts(ctx context.Context, contactIDs []string, properties []string) ([]Object, error) {
	inputs := make([]map[string]string, 0, len(contactIDs))
	for _, id := range contactIDs {
		inputs = append(inputs, map[string]string{"id": id})
	}

	body := map[string]any{
		"inputs":     inputs,
		"properties": properties,
	}

	result := struct {
		Results []Object `json:"results"`
	}{}
	if err := c.doJSON(ctx, "POST", "/crm/v3/objects/contacts/batch/read", body, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) SearchContactsByEmail(ctx context.Context, email string, properties []string) ([]Object, error) {
	body := map[string]any{
		"filterGroups": []map[string]any{
			{
				"filters": []map[string]any{
					{"propertyName": "email", "operator": "EQ", "value": email},
				},
			},
		},
		"properties": properties,
		"limit":      10,
	}

	result := struct {
		Results []Object `json:"results"`
	}{}
	if err := c.doJSON(ctx, "POST", "/crm/v3/objects/contacts/search", body, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) UpdateContact(ctx context.Context, contactID string, properties map[string]string) error {
	path := fmt.Sprintf("/crm/v3/objects/contacts/%s", url.PathEscape(contactID))
	body := map[string]any{"properties": properties}
	return c.doJSON(ctx, "PATCH", path, body, nil)
}
