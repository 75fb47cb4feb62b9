package hubspot

import (
	"context"
	"fmt"
	"net/url"
)

// GetListMemberships devuelve todos los ids de registros de una lista,
// siguiendo la paginación.
func (c *Client) GetListMemberships(ctx context.Context, listID string) ([]string, error) {
	recordIDs := []string{}
	after := ""

	for {
		path := fmt.Sprintf("/crm/v3/lists/%s/memberships?limit=250", url.PathEscape(listID))
		if after != "" {
			path += "&after=" + url.QueryEscape(after)
		}

		page := struct {
			Results []struct {
				RecordID string `json:"recordId"`
			} `json:"results"`
			Paging *paging `json:"paging"`
		}{}
		if err := c.doJSON(ctx, "GET", path, nil, &page); err != nil {
			return nil, err
		}

		for _, result := range page.Results {
			recordIDs = append(recordIDs, result.RecordID)
		}

		if page.Paging == nil || page.Paging.Next.After == "" {
			break
		}
		after = page.Paging.Next.After
	}

	return recordIDs, nil
}
