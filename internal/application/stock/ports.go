package stock

import (
	"context"

	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

// TxRunner executes fn inside one database transaction, passing repositories
// bound to that transaction. It guarantees that a product's counter update
// and its ledger row commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
