package service

import (
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
)

// AuthorizeMutation allows a state-changing operation on resource only when
// identity is its owner. Callers resolve the resource first so a missing
// resource surfaces as not-found rather than forbidden. Reads are not gated.
func AuthorizeMutation(identity *entity.User, resource entity.OwnedResource) error {
	if identity == nil || resource == nil {
		return domainerrors.ErrForbidden
	}

	if resource.OwnerIdentityID() != identity.ID {
		return domainerrors.ErrForbidden
	}

	return nil
}
