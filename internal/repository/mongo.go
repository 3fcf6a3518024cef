package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"permission-bot/internal/config"
	"permission-bot/internal/repository/model"
)

const (
	databaseName         = "permission-bot"
	threadCollectionName = "threads"
)

// threadDocument is the per-thread persisted form: one document per thread,
// keyed by the thread id.
type threadDocument struct {
	ID    string                 `bson:"_id"`
	Users map[string]*model.User `bson:"users"`
}

type mongoRepository struct {
	logger *zap.SugaredLogger

	threadCollection *mongo.Collection
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(shutdownCtx); err != nil {
			logger.Errorw("failed to disconnect from mongo", "error", err)
		}
	}()

	database := client.Database(databaseName)
	return &mongoRepository{
		logger:           logger,
		threadCollection: database.Collection(threadCollectionName),
	}, nil
}

func (m *mongoRepository) GetUserPermissions(ctx context.Context, threadID string, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var thread threadDocument
	err := m.threadCollection.FindOne(ctx, bson.M{"_id": threadID}).Decode(&thread)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user, ok := thread.Users[userID]
	if !ok || user.Permissions == nil {
		return nil, ErrUserNotFound
	}
	return user.Permissions, nil
}

func (m *mongoRepository) AddPermissionsToUser(ctx context.Context, threadID string, userID string, commands []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// $addToSet keeps the stored list a proper set; the file backend appends
	// blindly instead, which is the historical behaviour.
	update := bson.M{"$addToSet": bson.M{"users." + userID + ".permissions": bson.M{"$each": commands}}}
	opts := options.Update().SetUpsert(true)

	_, err := m.threadCollection.UpdateOne(ctx, bson.M{"_id": threadID}, update, opts)
	return err
}

func (m *mongoRepository) RemovePermissionsFromUser(ctx context.Context, threadID string, userID string, commands []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var thread threadDocument
	err := m.threadCollection.FindOne(ctx, bson.M{"_id": threadID}).Decode(&thread)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrUserNotFound
		}
		return err
	}

	// Reuse the document mutation logic so the prune cascade matches the file
	// backend exactly.
	doc := model.Document{threadID: &model.Thread{Users: thread.Users}}
	found, changed := doc.Revoke(threadID, userID, commands)
	if !found {
		return ErrUserNotFound
	}
	if !changed {
		return nil
	}

	if _, ok := doc[threadID]; !ok {
		_, err = m.threadCollection.DeleteOne(ctx, bson.M{"_id": threadID})
		return err
	}

	_, err = m.threadCollection.ReplaceOne(ctx, bson.M{"_id": threadID}, threadDocument{
		ID:    threadID,
		Users: doc[threadID].Users,
	})
	return err
}
