package sitehdl

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	sitesvc "github.com/zougmar/hassan-elec/internal/api/site/service"
)

// ServiceStore là các thao tác Service mà handler cần
type ServiceStore interface {
	List(ctx context.Context) ([]sitemodels.Service, error)
	Get(ctx context.Context, id primitive.ObjectID) (sitemodels.Service, error)
	InsertOne(ctx context.Context, data sitemodels.Service) (sitemodels.Service, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (sitemodels.Service, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProjectStore là các thao tác Project mà handler cần
type ProjectStore interface {
	List(ctx context.Context) ([]sitemodels.Project, error)
	Get(ctx context.Context, id primitive.ObjectID) (sitemodels.Project, error)
	Create(ctx context.Context, p sitemodels.Project) (sitemodels.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M, newImages []string) (sitemodels.Project, error)
	RemoveImage(ctx context.Context, id primitive.ObjectID, index int) (sitemodels.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// RequestStore là các thao tác ServiceRequest mà handler cần
type RequestStore interface {
	List(ctx context.Context, status string) ([]sitemodels.ServiceRequest, error)
	Get(ctx context.Context, id primitive.ObjectID) (sitemodels.ServiceRequest, error)
	Create(ctx context.Context, r sitemodels.ServiceRequest) (sitemodels.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (sitemodels.ServiceRequest, error)
	Stats(ctx context.Context) (sitemodels.RequestStats, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

var (
	_ ServiceStore = (*sitesvc.ServiceService)(nil)
	_ ProjectStore = (*sitesvc.ProjectService)(nil)
	_ RequestStore = (*sitesvc.RequestService)(nil)
)
