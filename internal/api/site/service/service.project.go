package sitesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/zougmar/hassan-elec/internal/api/base/service"
	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// Lỗi của Project
var (
	ErrProjectNotFound   = common.NewNotFoundError("Project not found")
	ErrInvalidImageIndex = common.NewValidationError("Invalid image index", nil)
)

// ProjectService thao tác trên collection projects
type ProjectService struct {
	*basesvc.BaseServiceMongoImpl[sitemodels.Project]
}

// NewProjectService tạo mới ProjectService
func NewProjectService(store *database.Store) (*ProjectService, error) {
	coll, err := store.Collection(global.MongoDB_ColNames.Projects)
	if err != nil {
		return nil, err
	}
	return &ProjectService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[sitemodels.Project](coll)}, nil
}

// List trả về Project mới nhất trước
func (s *ProjectService) List(ctx context.Context) ([]sitemodels.Project, error) {
	projects, err := s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	for i := range projects {
		projects[i].Images = utility.NonNil(projects[i].Images)
	}
	return projects, err
}

// Get trả về một Project
func (s *ProjectService) Get(ctx context.Context, id primitive.ObjectID) (sitemodels.Project, error) {
	p, err := s.FindOneById(ctx, id)
	p.Images = utility.NonNil(p.Images)
	return p, notFoundAs(err, ErrProjectNotFound)
}

// Create tạo Project, category mặc định "general"
func (s *ProjectService) Create(ctx context.Context, p sitemodels.Project) (sitemodels.Project, error) {
	p.Images = utility.NonNil(p.Images)
	return s.InsertOne(ctx, p)
}

// Update set các field và nối thêm ảnh mới vào cuối danh sách ảnh
func (s *ProjectService) Update(ctx context.Context, id primitive.ObjectID, set bson.M, newImages []string) (sitemodels.Project, error) {
	update := &basesvc.UpdateData{Set: set}
	if len(newImages) > 0 {
		update.Push = bson.M{"images": bson.M{"$each": newImages}}
	}
	if update.IsEmpty() {
		return s.Get(ctx, id)
	}
	p, err := s.UpdateById(ctx, id, update)
	p.Images = utility.NonNil(p.Images)
	return p, notFoundAs(err, ErrProjectNotFound)
}

// RemoveImage xóa ảnh ở vị trí index (tính từ 0) của Project
func (s *ProjectService) RemoveImage(ctx context.Context, id primitive.ObjectID, index int) (sitemodels.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return p, err
	}
	images, err := RemoveAt(p.Images, index)
	if err != nil {
		return p, err
	}
	p, err = s.UpdateById(ctx, id, bson.M{"images": images})
	p.Images = utility.NonNil(p.Images)
	return p, notFoundAs(err, ErrProjectNotFound)
}

// RemoveAt trả về slice mới đã bỏ phần tử index, index ngoài phạm vi trả ErrInvalidImageIndex
func RemoveAt(images []string, index int) ([]string, error) {
	if index < 0 || index >= len(images) {
		return nil, ErrInvalidImageIndex
	}
	out := make([]string, 0, len(images)-1)
	out = append(out, images[:index]...)
	return append(out, images[index+1:]...), nil
}

// Delete xóa Project
func (s *ProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundAs(s.DeleteById(ctx, id), ErrProjectNotFound)
}
