package postgres

import (
	"context"
	"time"

	"conecta/internal/domain/entity"
	domainerrors "conecta/internal/domain/errors"
	"conecta/internal/domain/repository"
	"conecta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// providerRepository implements the repository.ProviderRepository interface.
type providerRepository struct {
	db *gorm.DB
	// inTx marks a repository bound to a caller-owned transaction; row locks are only taken there.
	inTx bool
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{
		db: db,
	}
}

// Create persists a new provider and assigns its ID.
func (repo *providerRepository) Create(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(providerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePhone
		}
		if isValueTooLong(err) {
			return valueTooLongError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create provider")
	}

	provider.ID = providerM.ID
	provider.CreatedAt = providerM.CreatedAt
	provider.UpdatedAt = providerM.UpdatedAt

	return nil
}

// FindByID retrieves a provider with its reviews in insertion order.
func (repo *providerRepository) FindByID(ctx context.Context, id int64) (*entity.Provider, error) {
	var providerM model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Preload("Reviews", orderByID).
		Where("id = ?", id).
		First(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by ID")
	}

	return toProviderDomain(&providerM), nil
}

// Exists reports whether a provider with the given ID exists.
func (repo *providerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ids []int64

	query := repo.db.WithContext(ctx).
		Model(&model.ProviderModel{}).
		Where("id = ?", id)
	if repo.inTx {
		// Keeps the provider from being deleted until the caller's transaction ends.
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthShare})
	}

	if err := query.Limit(1).Pluck("id", &ids).Error; err != nil {
		return false, errors.Wrap(err, "failed to check provider existence")
	}

	return len(ids) > 0, nil
}

// List returns a page of providers ordered by ID, without reviews.
func (repo *providerRepository) List(ctx context.Context, offset, limit int) ([]*entity.Provider, error) {
	if limit == 0 {
		return []*entity.Provider{}, nil
	}

	var providerModels []*model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&providerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	return toProviderDomains(providerModels), nil
}

// ListAvailable returns every provider whose availability flag is set.
func (repo *providerRepository) ListAvailable(ctx context.Context) ([]*entity.Provider, error) {
	var providerModels []*model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Where("disponible = ?", true).
		Order("id ASC").
		Find(&providerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available providers")
	}

	return toProviderDomains(providerModels), nil
}

// ListForMap returns every provider, optionally restricted to an exact provider type.
// Availability is not filtered here; callers decide.
func (repo *providerRepository) ListForMap(ctx context.Context, providerType *string) ([]*entity.Provider, error) {
	var providerModels []*model.ProviderModel

	query := repo.db.WithContext(ctx).Order("id ASC")
	if providerType != nil {
		query = query.Where("tipo_proveedor = ?", *providerType)
	}

	if err := query.Find(&providerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list providers for map")
	}

	return toProviderDomains(providerModels), nil
}

// UpdateFields applies the supplied fields of patch and returns the updated provider with reviews.
func (repo *providerRepository) UpdateFields(ctx context.Context, id int64, patch *entity.ProviderPatch) (*entity.Provider, error) {
	updates := providerPatchColumns(patch)
	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}
	updates["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProviderModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrDuplicatePhone
		}
		if isValueTooLong(result.Error) {
			return nil, valueTooLongError(result.Error)
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update provider")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrProviderNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the provider and all of its reviews in one transaction,
// returning the pre-deletion snapshot.
func (repo *providerRepository) Delete(ctx context.Context, id int64) (*entity.Provider, error) {
	var snapshot *entity.Provider

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var providerM model.ProviderModel
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("id = ?", id).
			First(&providerM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrProviderNotFound
			}

			return errors.Wrap(err, "failed to lock provider")
		}

		if err := tx.Where("proveedor_id = ?", id).
			Order("id ASC").
			Find(&providerM.Reviews).Error; err != nil {
			return errors.Wrap(err, "failed to load provider reviews")
		}

		reviews := &reviewRepository{db: tx}
		if _, err := reviews.DeleteByProvider(ctx, id); err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.ProviderModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete provider")
		}
		if result.RowsAffected == 0 {
			return repository.ErrProviderNotFound
		}

		snapshot = toProviderDomain(&providerM)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// providerPatchColumns maps the supplied patch fields to their column names.
func providerPatchColumns(patch *entity.ProviderPatch) map[string]any {
	updates := map[string]any{}

	if patch.Name.Set {
		updates["nombre"] = patch.Name.Value
	}
	if patch.ProviderType.Set {
		updates["tipo_proveedor"] = patch.ProviderType.Value
	}
	if patch.ShortDescription.Set {
		updates["descripcion_corta"] = patch.ShortDescription.Value
	}
	if patch.Phone.Set {
		updates["telefono"] = patch.Phone.Value
	}
	if patch.Address.Set {
		updates["direccion"] = patch.Address.Value
	}
	if patch.City.Set {
		updates["ciudad"] = patch.City.Value
	}
	if patch.Latitude.Set {
		updates["latitud"] = patch.Latitude.Value
	}
	if patch.Longitude.Set {
		updates["longitud"] = patch.Longitude.Value
	}
	if patch.Available.Set {
		updates["disponible"] = patch.Available.Value
	}

	return updates
}

// --- Mapper Functions ---

// toProviderDomain converts a GORM ProviderModel to a domain Provider entity.
func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	provider := &entity.Provider{
		ID:               data.ID,
		Name:             data.Name,
		ProviderType:     data.ProviderType,
		ShortDescription: data.ShortDescription,
		Phone:            data.Phone,
		Address:          data.Address,
		City:             data.City,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		Available:        data.Available,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.Reviews != nil {
		provider.Reviews = make([]entity.Review, 0, len(data.Reviews))
		for i := range data.Reviews {
			provider.Reviews = append(provider.Reviews, *toReviewDomain(&data.Reviews[i]))
		}
	}

	return provider
}

func toProviderDomains(data []*model.ProviderModel) []*entity.Provider {
	providers := make([]*entity.Provider, 0, len(data))
	for _, providerM := range data {
		providers = append(providers, toProviderDomain(providerM))
	}

	return providers
}

// fromProviderDomain converts a domain Provider entity to a GORM ProviderModel.
// Reviews are never written through the provider.
func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	return &model.ProviderModel{
		ID:               data.ID,
		Name:             data.Name,
		ProviderType:     data.ProviderType,
		ShortDescription: data.ShortDescription,
		Phone:            data.Phone,
		Address:          data.Address,
		City:             data.City,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		Available:        data.Available,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
