package database

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zougmar/hassan-elec/internal/logger"
)

// EnsureCollections tạo các collection chưa tồn tại trong database của store.
func (s *Store) EnsureCollections(ctx context.Context, names ...string) error {
	existing, err := s.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, name := range names {
		if have[name] {
			continue
		}
		logger.WithCollection(name).Info("Collection chưa tồn tại, tạo mới")
		if err := s.DB.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}
	return nil
}

// parseOrder: thứ tự sắp xếp từ tag (1 hoặc -1)
func parseOrder(entry map[string]string) int {
	if entry["order"] == "-1" {
		return -1
	}
	return 1
}

// parseIndexTag phân tách tag index, ví dụ `index:"unique;compound:manager_status,order:-1"`
func parseIndexTag(tag string) []map[string]string {
	result := []map[string]string{}
	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		entry := map[string]string{}
		for _, subPart := range strings.Split(part, ",") {
			key, value, _ := strings.Cut(strings.TrimSpace(subPart), ":")
			entry[key] = value
		}
		result = append(result, entry)
	}
	return result
}

// IndexModels dựng danh sách index từ tag `index` của model.
//
// Các dạng tag hỗ trợ:
//   - unique: index đơn, unique
//   - single (hoặc text trống): index đơn thường
//   - compound:<group>: các field cùng group gộp thành một index theo thứ tự khai báo
//   - sparse, order:-1: tùy chọn đi kèm
func IndexModels(model any) []mongo.IndexModel {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var models []mongo.IndexModel
	groups := map[string]bson.D{}
	groupUnique := map[string]bool{}
	var groupOrder []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonName := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonName == "" || bsonName == "-" {
			continue
		}

		for _, entry := range parseIndexTag(tag) {
			order := parseOrder(entry)
			_, unique := entry["unique"]
			_, sparse := entry["sparse"]

			if group, ok := entry["compound"]; ok {
				if _, seen := groups[group]; !seen {
					groupOrder = append(groupOrder, group)
				}
				groups[group] = append(groups[group], bson.E{Key: bsonName, Value: order})
				if unique {
					groupUnique[group] = true
				}
				continue
			}

			opts := options.Index().SetName(bsonName + "_single")
			if unique {
				opts.SetName(bsonName + "_unique").SetUnique(true)
			}
			if sparse {
				opts.SetSparse(true)
			}
			models = append(models, mongo.IndexModel{Keys: bson.D{{Key: bsonName, Value: order}}, Options: opts})
		}
	}

	sort.Strings(groupOrder)
	for _, group := range groupOrder {
		opts := options.Index().SetName(group)
		if groupUnique[group] {
			opts.SetUnique(true)
		}
		models = append(models, mongo.IndexModel{Keys: groups[group], Options: opts})
	}
	return models
}

// CreateIndexes tạo các index khai báo trên model cho collection.
// Index đã tồn tại với cùng tên và cùng key thì MongoDB bỏ qua.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model any) error {
	models := IndexModels(model)
	if len(models) == 0 {
		return nil
	}
	if _, err := collection.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", collection.Name(), err)
	}
	logger.WithCollection(collection.Name()).WithField("count", len(models)).Debug("Indexes ensured")
	return nil
}
