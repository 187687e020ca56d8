package main

import (
	"github.com/sirupsen/logrus"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	sitemodels "github.com/zougmar/hassan-elec/internal/api/site/models"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
)

// collectionIndex gắn tên collection với model khai báo index
type collectionIndex struct {
	name  string
	model any
}

func collectionIndexes() []collectionIndex {
	cols := global.MongoDB_ColNames
	return []collectionIndex{
		{cols.Users, authmodels.Owner{}},
		{cols.Managers, orgmodels.Manager{}},
		{cols.Employees, orgmodels.Employee{}},
		{cols.Departments, orgmodels.Department{}},
		{cols.Organizations, orgmodels.Organization{}},
		{cols.Tasks, orgmodels.Task{}},
		{cols.Services, sitemodels.Service{}},
		{cols.Projects, sitemodels.Project{}},
		{cols.Requests, sitemodels.ServiceRequest{}},
	}
}

func collectionNames() []string {
	indexes := collectionIndexes()
	names := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		names = append(names, idx.name)
	}
	return names
}

// initRegistry đăng ký các collection vào registry của store
func initRegistry(store *database.Store) error {
	names := collectionNames()
	if err := store.Register(names...); err != nil {
		return err
	}
	logrus.WithField("count", len(names)).Info("Initialized collection registry")
	return nil
}
