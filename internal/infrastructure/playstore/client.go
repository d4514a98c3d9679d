package playstore

import (
	"context"

	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"assetdoor/internal/domain/entity"
	"assetdoor/pkg/errors"
	"assetdoor/pkg/logger"
)

// Client fetches the in-app product catalog from the Google Play Developer
// API. It only reads; retries are the caller's responsibility.
type Client struct {
	service     *androidpublisher.Service
	packageName string
}

func NewClient(ctx context.Context, packageName string, credentialsJSON []byte) (*Client, error) {
	opts := []option.ClientOption{
		option.WithScopes(androidpublisher.AndroidpublisherScope),
	}
	if len(credentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	}

	service, err := androidpublisher.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Auth("Failed to initialize Play Developer API client", err)
	}

	return &Client{
		service:     service,
		packageName: packageName,
	}, nil
}

func (c *Client) Platform() string {
	return entity.PlatformAndroid
}

// ListProducts retrieves the full current catalog in one call. totalSeen
// counts every record the store returned; dropped counts records that never
// reach the reconciler (missing SKU, unusable price).
func (c *Client) ListProducts(ctx context.Context) (items []*entity.IapProduct, totalSeen, dropped int, err error) {
	resp, err := c.service.Inappproducts.List(c.packageName).Context(ctx).Do()
	if err != nil {
		return nil, 0, 0, classifyAPIError(err)
	}

	totalSeen = len(resp.Inappproduct)

	for _, raw := range resp.Inappproduct {
		if raw.Sku == "" {
			logger.Warn("Skipping Play product without SKU (package %s)", c.packageName)
			dropped++
			continue
		}

		item, err := transformInAppProduct(raw)
		if err != nil {
			logger.Warn("Dropping Play product %s: %v", raw.Sku, err)
			dropped++
			continue
		}
		items = append(items, item)
	}

	return items, totalSeen, dropped, nil
}

func classifyAPIError(err error) error {
	if apiErr, ok := err.(*googleapi.Error); ok {
		if apiErr.Code == 401 || apiErr.Code == 403 {
			return errors.Auth("Play Developer API rejected the service account credentials", err)
		}
	}
	return errors.Upstream("Play Developer API request failed", err)
}
