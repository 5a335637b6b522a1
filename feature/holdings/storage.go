package holdings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"finledger/core/reconcile"
	"finledger/core/storage"
	"finledger/core/utils"
)

const dateLayout = "2006-01-02"

// SnapshotPrefix is the object-storage prefix holding ledger snapshots.
const SnapshotPrefix = "system/"

// ErrInvalidSnapshot is returned when a snapshot document cannot be used.
var ErrInvalidSnapshot = errors.New("invalid holdings snapshot")

// SnapshotKey returns the object key of a user's snapshot for one asset class and date.
func SnapshotKey(userID string, asset reconcile.AssetClass, asOf time.Time) string {
	return fmt.Sprintf("%s%s/%s/%s.json", SnapshotPrefix, userID, asset, asOf.Format(dateLayout))
}

// snapshot is the document the ledger writes per user, asset class and date.
type snapshot struct {
	UserID     string            `json:"user_id"`
	AssetClass string            `json:"asset_class"`
	AsOfDate   string            `json:"as_of_date"`
	Holdings   []snapshotHolding `json:"holdings"`
}

type snapshotHolding struct {
	ISIN        string `json:"isin"`
	FolioNumber string `json:"folio_number"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Units       any    `json:"units"`
	MarketValue any    `json:"market_value"`
}

// StorageProvider reads ledger snapshots from object storage.
type StorageProvider struct {
	client   storage.Client
	bucket   string
	maxBytes int64
}

// NewStorageProvider creates a provider reading from bucket.
func NewStorageProvider(client storage.Client, bucket string, maxBytes int64) *StorageProvider {
	return &StorageProvider{client: client, bucket: bucket, maxBytes: maxBytes}
}

// SystemHoldings implements Provider. A missing snapshot is an error, not an empty list.
func (p *StorageProvider) SystemHoldings(ctx context.Context, userID string, asset reconcile.AssetClass, asOf time.Time) ([]SystemHolding, error) {
	key := SnapshotKey(userID, asset, asOf)
	data, err := storage.ReadObject(ctx, p.client, p.bucket, key, p.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to load system holdings: %w", err)
	}
	return parseSnapshot(key, data, userID, asset)
}

func parseSnapshot(key string, data []byte, userID string, asset reconcile.AssetClass) ([]SystemHolding, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var snap snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", key, ErrInvalidSnapshot, err)
	}
	if snap.UserID != "" && snap.UserID != userID {
		return nil, fmt.Errorf("%s: %w: belongs to user %q", key, ErrInvalidSnapshot, snap.UserID)
	}
	if snap.AssetClass != "" && !strings.EqualFold(snap.AssetClass, string(asset)) {
		return nil, fmt.Errorf("%s: %w: asset class %q", key, ErrInvalidSnapshot, snap.AssetClass)
	}

	out := make([]SystemHolding, 0, len(snap.Holdings))
	for i, raw := range snap.Holdings {
		units, _, err := utils.ToDecimal(raw.Units)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: holding %d units: %v", key, ErrInvalidSnapshot, i, err)
		}
		value, ok, err := utils.ToDecimal(raw.MarketValue)
		if err != nil || !ok {
			return nil, fmt.Errorf("%s: %w: holding %d market_value missing or invalid", key, ErrInvalidSnapshot, i)
		}
		out = append(out, SystemHolding{
			AssetClass:  asset,
			ISIN:        strings.TrimSpace(raw.ISIN),
			FolioNumber: strings.TrimSpace(raw.FolioNumber),
			Symbol:      strings.TrimSpace(raw.Symbol),
			Name:        strings.TrimSpace(raw.Name),
			Units:       units,
			MarketValue: value,
		})
	}
	return out, nil
}
