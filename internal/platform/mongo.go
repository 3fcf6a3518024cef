package platform

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"permission-bot/internal/config"
)

const (
	gatewayDatabaseName  = "chat-gateway"
	threadCollectionName = "threads"
)

// threadMetadata is the gateway's view of a thread. The gateway keeps this
// collection current as users join, leave and get promoted; this service
// only reads it.
type threadMetadata struct {
	ID           string        `bson:"_id"`
	Name         string        `bson:"name"`
	Participants []Participant `bson:"participants"`
	Admins       []string      `bson:"admins"`
}

type mongoDirectory struct {
	logger *zap.SugaredLogger

	threadCollection *mongo.Collection
	botOwner         string
}

func NewMongoDirectory(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig, botOwner string) (Directory, error) {
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

	database := client.Database(gatewayDatabaseName)
	return &mongoDirectory{
		logger:           logger,
		threadCollection: database.Collection(threadCollectionName),
		botOwner:         botOwner,
	}, nil
}

func (d *mongoDirectory) ThreadInfo(ctx context.Context, threadID string) (*ThreadInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var thread threadMetadata
	if err := d.threadCollection.FindOne(ctx, bson.M{"_id": threadID}).Decode(&thread); err != nil {
		return nil, err
	}

	return &ThreadInfo{
		ID:           thread.ID,
		Name:         thread.Name,
		Participants: thread.Participants,
	}, nil
}

func (d *mongoDirectory) ThreadAdmins(ctx context.Context, threadID string) (*AdminInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var thread threadMetadata
	if err := d.threadCollection.FindOne(ctx, bson.M{"_id": threadID}).Decode(&thread); err != nil {
		return nil, err
	}

	return &AdminInfo{
		Admins:   thread.Admins,
		BotOwner: d.botOwner,
	}, nil
}
