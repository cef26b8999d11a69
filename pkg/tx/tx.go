package tx

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager открывает транзакции на пуле. querier.Querier подхватывает открытую транзакцию из ctx.
type Manager struct {
	trm      *manager.Manager
	settings trm.Settings
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		trm: manager.Must(pgxv5.NewDefaultFactory(db)),
		settings: pgxv5.MustSettings(
			settings.Must(),
			pgxv5.WithTxOptions(pgx.TxOptions{
				IsoLevel:   pgx.ReadCommitted,
				AccessMode: pgx.ReadWrite,
			}),
		),
	}
}

// Do выполняет fn в транзакции READ COMMITTED.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := m.trm.DoWithSettings(ctx, m.settings, fn); err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	return nil
}
