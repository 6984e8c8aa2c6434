package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	deliverycontext "ecopoint/internal/delivery/context"
	"ecopoint/internal/domain/entity"
	domainerrors "ecopoint/internal/domain/errors"
	"ecopoint/internal/domain/repository"
	"ecopoint/internal/domain/service"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager        repository.TransactionManager
	materialTypeRepo repository.MaterialTypeRepository
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	materialTypeRepo repository.MaterialTypeRepository,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:        txManager,
		materialTypeRepo: materialTypeRepo,
		qrcodeService:    qrcodeService,
		logger:           logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DefineMaterialType registers a new material with its per-item point value.
func (srv *catalogService) DefineMaterialType(ctx context.Context, adminID uuid.UUID, input usecase.DefineMaterialTypeInput) (*entity.MaterialType, error) {
	srv.log(ctx).Info("Defining material type", slog.String("name", input.Name), slog.Int("pointValue", input.PointValue))

	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "material name is required")
	}
	if input.PointValue <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "point value must be positive")
	}

	materialType := &entity.MaterialType{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		PointValue:  input.PointValue,
		Code:        generateMaterialCode(input.Name, time.Now()),
		CreatedBy:   adminID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.MaterialTypeRepo().Create(ctx, materialType)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to define material type", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute material type transaction")
	}

	srv.log(ctx).Debug("Material type defined", slog.Any("id", materialType.ID), slog.String("code", materialType.Code))

	return materialType, nil
}

// GetMaterialType retrieves a single material by ID.
func (srv *catalogService) GetMaterialType(ctx context.Context, id uuid.UUID) (*entity.MaterialType, error) {
	materialType, err := srv.materialTypeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMaterialTypeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnknownMaterial, "material type not found")
		}

		return nil, errors.Wrap(err, "failed to find material type")
	}

	return materialType, nil
}

// GetMaterialTypeByCode resolves a scanned identifier code to its material.
func (srv *catalogService) GetMaterialTypeByCode(ctx context.Context, code string) (*entity.MaterialType, error) {
	materialType, err := srv.materialTypeRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrMaterialTypeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnknownMaterial, "material type not found")
		}

		return nil, errors.Wrap(err, "failed to find material type by code")
	}

	return materialType, nil
}

// ListMaterialTypes returns the full catalog.
func (srv *catalogService) ListMaterialTypes(ctx context.Context) ([]*entity.MaterialType, error) {
	materials, err := srv.materialTypeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list material types")
	}

	return materials, nil
}

// MaterialLabelPNG renders the printable QR label for a material.
func (srv *catalogService) MaterialLabelPNG(ctx context.Context, id uuid.UUID) ([]byte, error) {
	materialType, err := srv.GetMaterialType(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateMaterialLabel(materialType.Code)
	if err != nil {
		srv.log(ctx).Error("Failed to generate material label", slog.Any("id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate material label")
	}

	return png, nil
}

// generateMaterialCode derives the scannable identifier embedded in printed
// labels: QR_<UPPER_SNAKE_NAME>_<unix millis>. The timestamp suffix keeps
// codes unique across materials sharing a name.
func generateMaterialCode(name string, now time.Time) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		slug = "MATERIAL"
	}

	return fmt.Sprintf("QR_%s_%d", slug, now.UnixMilli())
}
