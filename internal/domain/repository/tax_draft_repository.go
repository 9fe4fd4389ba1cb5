package repository

import "github.com/smartax-ai/smartax-api/internal/domain/entity"

// TaxDraftRepository define el puerto de almacenamiento de borradores por sesión.
// Las implementaciones devuelven copias; modificar un borrador leído no altera el almacén.
type TaxDraftRepository interface {
	SessionPurger
	// Insert agrega un borrador al final; ErrDuplicate si el id ya existe.
	Insert(sessionID string, draft *entity.TaxDraft) error
	// Replace sustituye en su lugar un borrador existente; ErrNotFound si no existe.
	Replace(sessionID string, draft *entity.TaxDraft) error
	// GetByID devuelve nil, nil si el borrador no existe.
	GetByID(sessionID, id string) (*entity.TaxDraft, error)
	Delete(sessionID, id string) error
	// List devuelve los borradores en orden de inserción.
	List(sessionID string) ([]*entity.TaxDraft, error)
	// GetActive devuelve el borrador en edición; nil, nil si la sesión aún no tiene uno.
	GetActive(sessionID string) (*entity.TaxDraft, error)
	SetActive(sessionID string, draft *entity.TaxDraft) error
	// UpdateActive lee y reemplaza el borrador activo bajo un solo candado.
	// active es nil si la sesión no tiene uno; si fn falla no se guarda nada.
	UpdateActive(sessionID string, fn func(active *entity.TaxDraft) (*entity.TaxDraft, error)) (*entity.TaxDraft, error)
	// SaveActive guarda el borrador activo en la misma operación en que fn lo prepara:
	// stored indica si su id ya está guardado; en ese caso se reemplaza en su lugar y si no
	// se agrega al final. El resultado queda también como activo.
	SaveActive(sessionID string, fn func(active *entity.TaxDraft, stored bool) (*entity.TaxDraft, error)) (saved *entity.TaxDraft, replaced bool, err error)
}
