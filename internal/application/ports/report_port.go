package ports

import (
	"context"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
)

// TaxReportGenerator genera la representación PDF de un cálculo fiscal.
// Solo se invoca con borradores que ya tienen resultado.
type TaxReportGenerator interface {
	GenerateTaxReport(ctx context.Context, draft *entity.TaxDraft) ([]byte, error)
}
