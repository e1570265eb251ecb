package property

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"propview-backend/internal/config"
	"propview-backend/internal/domain"
	"propview-backend/internal/repository"
)

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input domain.CreatePropertyInput) (*domain.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Property], error)
	Search(ctx context.Context, filter domain.PropertySearchFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Property], error)
	Update(ctx context.Context, id, actorID uuid.UUID, actorRole string, input domain.UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id, actorID uuid.UUID, actorRole string) error
	UploadImage(ctx context.Context, propertyID, actorID uuid.UUID, actorRole, fileName, mimeType string, fileSize int64, reader io.Reader, isPrimary bool) (*domain.PropertyImage, error)
	DeleteImage(ctx context.Context, imageID, actorID uuid.UUID, actorRole string) error
}

type service struct {
	propertyRepo repository.PropertyRepository
	auditRepo    repository.AuditLogRepository
	minioClient  *minio.Client
	redis        *redis.Client
	cfg          *config.Config
}

func NewService(propertyRepo repository.PropertyRepository, auditRepo repository.AuditLogRepository, minioClient *minio.Client, redis *redis.Client, cfg *config.Config) Service {
	return &service{
		propertyRepo: propertyRepo,
		auditRepo:    auditRepo,
		minioClient:  minioClient,
		redis:        redis,
		cfg:          cfg,
	}
}

func cacheKey(id uuid.UUID) string {
	return "property:" + id.String()
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input domain.CreatePropertyInput) (*domain.Property, error) {
	property := &domain.Property{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        input.Title,
		Description:  input.Description,
		PropertyType: input.PropertyType,
		ListingType:  input.ListingType,
		Status:       domain.PropertyActive,
		Price:        input.Price,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		SquareFeet:   input.SquareFeet,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	s.logAudit(ctx, ownerID, "CREATE_PROPERTY", property.ID, nil, property)
	return property, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey(id)).Result(); err == nil {
			var property domain.Property
			if json.Unmarshal([]byte(cached), &property) == nil {
				return &property, nil
			}
		}
	}

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.NewNotFound("Property", id)
	}

	images, err := s.propertyRepo.GetImages(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range images {
		images[i].URL = s.publicURL(images[i].StoragePath)
	}
	property.Images = images

	if s.redis != nil {
		if propertyJSON, err := json.Marshal(property); err == nil {
			_ = s.redis.Set(ctx, cacheKey(id), propertyJSON, 5*time.Minute).Err()
		}
	}

	return property, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Property], error) {
	params.Validate()
	properties, total, err := s.propertyRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Property]{}, err
	}
	return domain.NewPaginatedResponse(properties, params.Page, params.PageSize, total), nil
}

func (s *service) Search(ctx context.Context, filter domain.PropertySearchFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Property], error) {
	params.Validate()
	properties, total, err := s.propertyRepo.Search(ctx, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Property]{}, err
	}
	return domain.NewPaginatedResponse(properties, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id, actorID uuid.UUID, actorRole string, input domain.UpdatePropertyInput) (*domain.Property, error) {
	existing, err := s.requireOwnership(ctx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && !input.Status.IsValid() {
		return nil, domain.NewInvalidRequest(fmt.Sprintf("Invalid property status %q", *input.Status))
	}

	if err := s.propertyRepo.Update(ctx, id, input); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	updated, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, actorID, "UPDATE_PROPERTY", id, existing, updated)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id, actorID uuid.UUID, actorRole string) error {
	existing, err := s.requireOwnership(ctx, id, actorID, actorRole)
	if err != nil {
		return err
	}

	images, err := s.propertyRepo.GetImages(ctx, id)
	if err != nil {
		return err
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	if s.minioClient != nil {
		for _, img := range images {
			_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, img.StoragePath, minio.RemoveObjectOptions{})
		}
	}

	s.logAudit(ctx, actorID, "DELETE_PROPERTY", id, existing, nil)
	return nil
}

func (s *service) UploadImage(ctx context.Context, propertyID, actorID uuid.UUID, actorRole, fileName, mimeType string, fileSize int64, reader io.Reader, isPrimary bool) (*domain.PropertyImage, error) {
	if _, err := s.requireOwnership(ctx, propertyID, actorID, actorRole); err != nil {
		return nil, err
	}

	imageID := uuid.New()
	storagePath := fmt.Sprintf("properties/%s/%s", propertyID, imageID)

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	img := &domain.PropertyImage{
		ID:          imageID,
		PropertyID:  propertyID,
		StoragePath: storagePath,
		FileName:    fileName,
		MimeType:    mimeType,
		IsPrimary:   isPrimary,
	}
	if err := s.propertyRepo.AddImage(ctx, img); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	s.invalidate(ctx, propertyID)
	img.URL = s.publicURL(storagePath)
	return img, nil
}

func (s *service) DeleteImage(ctx context.Context, imageID, actorID uuid.UUID, actorRole string) error {
	img, err := s.propertyRepo.GetImage(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return domain.NewNotFound("PropertyImage", imageID)
	}

	if _, err := s.requireOwnership(ctx, img.PropertyID, actorID, actorRole); err != nil {
		return err
	}

	if err := s.propertyRepo.DeleteImage(ctx, imageID); err != nil {
		return err
	}
	if s.minioClient != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, img.StoragePath, minio.RemoveObjectOptions{})
	}

	s.invalidate(ctx, img.PropertyID)
	return nil
}

// requireOwnership loads the property and checks the actor may mutate
// it. Admins may mutate any property.
func (s *service) requireOwnership(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.NewNotFound("Property", id)
	}
	if actorRole != string(domain.RoleAdmin) && property.OwnerID != actorID {
		return nil, domain.NewForbidden("Only the property owner can modify this listing")
	}
	return property, nil
}

func (s *service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, cacheKey(id)).Err()
	}
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, storagePath)
}

func (s *service) logAudit(ctx context.Context, actorID uuid.UUID, action string, entityID uuid.UUID, oldValue, newValue interface{}) {
	audit := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     actorID,
		Action:     action,
		EntityType: "PROPERTY",
		EntityID:   entityID,
	}
	if oldValue != nil {
		audit.OldValue, _ = json.Marshal(oldValue)
	}
	if newValue != nil {
		audit.NewValue, _ = json.Marshal(newValue)
	}
	_ = s.auditRepo.Create(ctx, audit)
}
