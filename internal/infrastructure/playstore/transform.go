package playstore

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"google.golang.org/api/androidpublisher/v3"

	"assetdoor/internal/domain/entity"
	"assetdoor/pkg/errors"
	"assetdoor/pkg/logger"
)

var microsPerUnit = decimal.NewFromInt(1_000_000)

// transformInAppProduct normalizes one store record into the iapProducts
// document shape. Only store-origin fields are populated; link fields stay
// zero so a create never claims a product.
func transformInAppProduct(raw *androidpublisher.InAppProduct) (*entity.IapProduct, error) {
	prices, err := extractPrices(raw)
	if err != nil {
		return nil, err
	}

	name := raw.Sku
	description := ""
	if listing, ok := raw.Listings[raw.DefaultLanguage]; ok {
		if listing.Title != "" {
			name = listing.Title
		}
		description = listing.Description
	}

	return &entity.IapProduct{
		Platform:    entity.PlatformAndroid,
		SKU:         raw.Sku,
		Name:        name,
		Description: description,
		Prices:      prices,
		Status:      normalizeStatus(raw.Status),
	}, nil
}

// extractPrices emits one entry per currency the store reports, default
// price first. A malformed default price fails the record; malformed
// regional prices are skipped.
func extractPrices(raw *androidpublisher.InAppProduct) ([]entity.IapPrice, error) {
	var prices []entity.IapPrice
	seen := map[string]bool{}

	if raw.DefaultPrice != nil {
		price, err := toPrice(raw.DefaultPrice.PriceMicros, raw.DefaultPrice.Currency)
		if err != nil {
			return nil, errors.Transform(fmt.Sprintf("malformed default price for %s", raw.Sku), err)
		}
		prices = append(prices, price)
		seen[price.Currency] = true
	}

	regions := make([]string, 0, len(raw.Prices))
	for region := range raw.Prices {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		regional := raw.Prices[region]
		if seen[regional.Currency] {
			continue
		}
		price, err := toPrice(regional.PriceMicros, regional.Currency)
		if err != nil {
			logger.Warn("Skipping malformed %s price for %s: %v", region, raw.Sku, err)
			continue
		}
		prices = append(prices, price)
		seen[price.Currency] = true
	}

	return prices, nil
}

func toPrice(priceMicros, currencyCode string) (entity.IapPrice, error) {
	if currencyCode == "" {
		currencyCode = "USD"
	}
	micros, err := strconv.ParseInt(priceMicros, 10, 64)
	if err != nil {
		return entity.IapPrice{}, err
	}

	amount, _ := decimal.NewFromInt(micros).Div(microsPerUnit).Float64()

	return entity.IapPrice{
		Currency:  currencyCode,
		Amount:    amount,
		Formatted: formatPrice(amount, currencyCode),
	}, nil
}

func formatPrice(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}
	printer := message.NewPrinter(language.English)
	return printer.Sprintf("%v", currency.NarrowSymbol(unit.Amount(amount)))
}

func normalizeStatus(status string) string {
	switch status {
	case "active":
		return entity.IapStatusActive
	case "inactive":
		return entity.IapStatusInactive
	default:
		return entity.IapStatusPending
	}
}
