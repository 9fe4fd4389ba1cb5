package memory

import (
	"fmt"
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
)

var _ repository.TaxDraftRepository = (*TaxDraftRepo)(nil)

// draftSpace borradores de una sesión: orden de inserción, índice por id y borrador activo.
type draftSpace struct {
	order  []string
	byID   map[string]*entity.TaxDraft
	active *entity.TaxDraft
}

func (s *draftSpace) clone() *draftSpace {
	if s == nil {
		return nil
	}
	out := &draftSpace{
		order:  append([]string(nil), s.order...),
		byID:   make(map[string]*entity.TaxDraft, len(s.byID)),
		active: s.active.Clone(),
	}
	for id, d := range s.byID {
		out.byID[id] = d.Clone()
	}
	return out
}

func newDraftSpace() *draftSpace {
	return &draftSpace{byID: make(map[string]*entity.TaxDraft)}
}

// TaxDraftRepo implementación en memoria del puerto TaxDraftRepository.
type TaxDraftRepo struct {
	store *Store[*draftSpace]
}

// NewTaxDraftRepository construye el repositorio; ttl es la vida de la sesión.
func NewTaxDraftRepository(ttl time.Duration) *TaxDraftRepo {
	return &TaxDraftRepo{store: NewStore(ttl, (*draftSpace).clone)}
}

// Close libera la limpieza periódica del almacén.
func (r *TaxDraftRepo) Close() { r.store.Close() }

func (r *TaxDraftRepo) update(sessionID string, fn func(sp *draftSpace) error) error {
	_, err := r.store.Update(sessionID, func(sp *draftSpace, ok bool) (*draftSpace, error) {
		if !ok {
			sp = newDraftSpace()
		}
		if err := fn(sp); err != nil {
			return nil, err
		}
		return sp, nil
	})
	return err
}

// Insert agrega el borrador al final de la lista.
func (r *TaxDraftRepo) Insert(sessionID string, draft *entity.TaxDraft) error {
	if draft == nil || draft.ID == "" {
		return fmt.Errorf("insert draft: %w: id requerido", domain.ErrInvalidInput)
	}
	return r.update(sessionID, func(sp *draftSpace) error {
		if _, exists := sp.byID[draft.ID]; exists {
			return fmt.Errorf("insert draft %s: %w", draft.ID, domain.ErrDuplicate)
		}
		sp.order = append(sp.order, draft.ID)
		sp.byID[draft.ID] = draft.Clone()
		return nil
	})
}

// Replace sustituye el borrador conservando su posición.
func (r *TaxDraftRepo) Replace(sessionID string, draft *entity.TaxDraft) error {
	if draft == nil {
		return fmt.Errorf("replace draft: %w", domain.ErrInvalidInput)
	}
	return r.update(sessionID, func(sp *draftSpace) error {
		if _, exists := sp.byID[draft.ID]; !exists {
			return fmt.Errorf("replace draft %s: %w", draft.ID, domain.ErrNotFound)
		}
		sp.byID[draft.ID] = draft.Clone()
		return nil
	})
}

// GetByID obtiene un borrador por id.
func (r *TaxDraftRepo) GetByID(sessionID, id string) (*entity.TaxDraft, error) {
	sp, ok := r.store.Get(sessionID)
	if !ok {
		return nil, nil
	}
	d, ok := sp.byID[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

// Delete elimina el borrador.
func (r *TaxDraftRepo) Delete(sessionID, id string) error {
	return r.update(sessionID, func(sp *draftSpace) error {
		if _, exists := sp.byID[id]; !exists {
			return fmt.Errorf("delete draft %s: %w", id, domain.ErrNotFound)
		}
		delete(sp.byID, id)
		for i, v := range sp.order {
			if v == id {
				sp.order = append(sp.order[:i], sp.order[i+1:]...)
				break
			}
		}
		return nil
	})
}

// List lista los borradores de la sesión en orden de inserción.
func (r *TaxDraftRepo) List(sessionID string) ([]*entity.TaxDraft, error) {
	sp, ok := r.store.Get(sessionID)
	if !ok {
		return []*entity.TaxDraft{}, nil
	}
	out := make([]*entity.TaxDraft, 0, len(sp.order))
	for _, id := range sp.order {
		out = append(out, sp.byID[id])
	}
	return out, nil
}

// GetActive devuelve el borrador en edición.
func (r *TaxDraftRepo) GetActive(sessionID string) (*entity.TaxDraft, error) {
	sp, ok := r.store.Get(sessionID)
	if !ok {
		return nil, nil
	}
	return sp.active, nil
}

// SetActive reemplaza el borrador en edición.
func (r *TaxDraftRepo) SetActive(sessionID string, draft *entity.TaxDraft) error {
	return r.update(sessionID, func(sp *draftSpace) error {
		sp.active = draft.Clone()
		return nil
	})
}

// UpdateActive transforma el borrador activo bajo el candado del almacén.
func (r *TaxDraftRepo) UpdateActive(sessionID string, fn func(active *entity.TaxDraft) (*entity.TaxDraft, error)) (*entity.TaxDraft, error) {
	var out *entity.TaxDraft
	err := r.update(sessionID, func(sp *draftSpace) error {
		next, err := fn(sp.active)
		if err != nil {
			return err
		}
		if next == nil {
			return fmt.Errorf("update active draft: %w: borrador requerido", domain.ErrInvalidInput)
		}
		sp.active = next.Clone()
		out = next.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveActive prepara el borrador activo con fn y lo guarda en la lista en la misma operación.
func (r *TaxDraftRepo) SaveActive(sessionID string, fn func(active *entity.TaxDraft, stored bool) (*entity.TaxDraft, error)) (*entity.TaxDraft, bool, error) {
	var (
		out      *entity.TaxDraft
		replaced bool
	)
	err := r.update(sessionID, func(sp *draftSpace) error {
		stored := false
		if sp.active != nil && sp.active.ID != "" {
			_, stored = sp.byID[sp.active.ID]
		}
		next, err := fn(sp.active, stored)
		if err != nil {
			return err
		}
		if next == nil || next.ID == "" {
			return fmt.Errorf("save active draft: %w: id requerido", domain.ErrInvalidInput)
		}
		if _, exists := sp.byID[next.ID]; exists {
			replaced = true
		} else {
			sp.order = append(sp.order, next.ID)
		}
		sp.byID[next.ID] = next.Clone()
		sp.active = next.Clone()
		out = next.Clone()
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, replaced, nil
}

// Purge descarta los borradores y el activo al cerrar la sesión.
func (r *TaxDraftRepo) Purge(sessionID string) { r.store.Delete(sessionID) }
