package repo

import (
	"context"
	"fmt"

	"hearth/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const logCollection = "logs"

type LogRepository struct {
	collection *mongo.Collection
}

func NewLogRepository(mongoClient *mongo.Client, dbName string) *LogRepository {
	return &LogRepository{
		collection: mongoClient.Database(dbName).Collection(logCollection),
	}
}

// EnsureIndexes 조회용 인덱스 (timestamp, service + 이벤트 타입)
func (r *LogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{
			Keys:    bson.D{{Key: "service", Value: 1}, {Key: "log_event_type", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("service_event_timestamp"),
		},
	})
	if err != nil {
		return fmt.Errorf("create log indexes: %w", err)
	}
	return nil
}

// InsertLog 로그 1건 저장
func (r *LogRepository) InsertLog(ctx context.Context, baseLog logger.BaseLog) error {
	_, err := r.collection.InsertOne(ctx, baseLog)
	return err
}
