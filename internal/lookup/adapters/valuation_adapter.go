package adapters

import (
	"context"

	"lookout/internal/lookup/models"
	"lookout/internal/lookup/ports"
	"lookout/internal/upstream/rolimons"
)

// ValuationAdapter implements ports.ValuationSource with the Rolimons client.
type ValuationAdapter struct {
	client *rolimons.Client
}

var _ ports.ValuationSource = (*ValuationAdapter)(nil)

func NewValuationAdapter(client *rolimons.Client) *ValuationAdapter {
	return &ValuationAdapter{client: client}
}

func (a *ValuationAdapter) Valuation(ctx context.Context, userID int64) (models.Valuation, error) {
	info, err := a.client.PlayerInfo(ctx, userID)
	if err != nil {
		return models.Valuation{}, err
	}
	v := models.Valuation{
		Value:          info.Value,
		RAP:            info.RAP,
		Premium:        info.Premium,
		PrivacyEnabled: info.PrivacyEnabled,
	}
	if info.TradeData != nil {
		v.HasTradeData = true
		v.TradesDone = info.TradeData.Completed
		v.TradeScore = info.TradeData.Score
		v.TradeRatio = info.TradeData.Ratio
	}
	return v, nil
}
