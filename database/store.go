package database

import (
	"context"
	"fmt"
	"time"

	"nfl-survivor-go/engineerrors"
	"nfl-survivor-go/logging"
	"nfl-survivor-go/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements store.Reader and store.Writer (nfl-survivor-go/store)
// over a set of MongoDB collections: games, teams, team_week_stats,
// picks, entries, simulation_runs, following a one-collection-per-entity,
// compound-index repository pattern.
type MongoStore struct {
	games   *mongo.Collection
	teams   *mongo.Collection
	stats   *mongo.Collection
	picks   *mongo.Collection
	entries *mongo.Collection
	simRuns *mongo.Collection
}

// NewMongoStore wires collections and creates the indexes the core's
// query patterns rely on.
func NewMongoStore(db *MongoDB) *MongoStore {
	s := &MongoStore{
		games:   db.GetCollection("games"),
		teams:   db.GetCollection("teams"),
		stats:   db.GetCollection("team_week_stats"),
		picks:   db.GetCollection("picks"),
		entries: db.GetCollection("entries"),
		simRuns: db.GetCollection("simulation_runs"),
	}
	s.ensureIndexes()
	return s
}

func (s *MongoStore) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gameIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "season", Value: 1}, {Key: "week", Value: 1}, {Key: "home", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.games.Indexes().CreateOne(ctx, gameIdx); err != nil {
		logging.Warnf("could not create games index: %v", err)
	}

	statsIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "team", Value: 1}, {Key: "season", Value: 1}, {Key: "week", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.stats.Indexes().CreateOne(ctx, statsIdx); err != nil {
		logging.Warnf("could not create stats index: %v", err)
	}

	pickIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "entry", Value: 1}, {Key: "season", Value: 1}, {Key: "week", Value: 1}},
	}
	if _, err := s.picks.Indexes().CreateOne(ctx, pickIdx); err != nil {
		logging.Warnf("could not create picks index: %v", err)
	}
}

// ListGames implements store.Reader.
func (s *MongoStore) ListGames(ctx context.Context, season, weekMin int, unplayedOnly, requireWinProb bool) ([]models.Game, error) {
	filter := bson.M{"season": season, "week": bson.M{"$gte": weekMin}}
	if unplayedOnly {
		filter["home_win"] = bson.M{"$exists": false}
	}
	if requireWinProb {
		filter["home_win_prob"] = bson.M{"$exists": true}
	}

	cursor, err := s.games.Find(ctx, filter)
	if err != nil {
		return nil, engineerrors.Transient("list games failed", err.Error())
	}
	defer cursor.Close(ctx)

	var games []models.Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, engineerrors.Transient("decode games failed", err.Error())
	}
	return games, nil
}

// ListTeams implements store.Reader.
func (s *MongoStore) ListTeams(ctx context.Context) ([]models.Team, error) {
	cursor, err := s.teams.Find(ctx, bson.M{})
	if err != nil {
		return nil, engineerrors.Transient("list teams failed", err.Error())
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, engineerrors.Transient("decode teams failed", err.Error())
	}
	return teams, nil
}

// LatestStats implements store.Reader: finds the single row with the
// highest Week <= weekUpper for (team, season), sorted server-side so
// only one document crosses the wire.
func (s *MongoStore) LatestStats(ctx context.Context, team string, season, weekUpper int) (*models.TeamWeekStats, error) {
	filter := bson.M{"team": team, "season": season, "week": bson.M{"$lte": weekUpper}}
	opts := options.FindOne().SetSort(bson.D{{Key: "week", Value: -1}})

	var row models.TeamWeekStats
	err := s.stats.FindOne(ctx, filter, opts).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, engineerrors.Transient("latest stats query failed", err.Error())
	}
	return &row, nil
}

// ListPicks implements store.Reader.
func (s *MongoStore) ListPicks(ctx context.Context, entryID string) ([]models.Pick, error) {
	cursor, err := s.picks.Find(ctx, bson.M{"entry": entryID})
	if err != nil {
		return nil, engineerrors.Transient("list picks failed", err.Error())
	}
	defer cursor.Close(ctx)

	var picks []models.Pick
	if err := cursor.All(ctx, &picks); err != nil {
		return nil, engineerrors.Transient("decode picks failed", err.Error())
	}
	return picks, nil
}

// UpdateGameWinProb implements store.Writer.
func (s *MongoStore) UpdateGameWinProb(ctx context.Context, season, week int, home string, pHome, pAway float64) error {
	filter := bson.M{"season": season, "week": week, "home": home}
	update := bson.M{"$set": bson.M{"home_win_prob": pHome, "away_win_prob": pAway}}
	res, err := s.games.UpdateOne(ctx, filter, update)
	if err != nil {
		return engineerrors.Transient("update win prob failed", err.Error())
	}
	if res.MatchedCount == 0 {
		return engineerrors.NotFound(fmt.Sprintf("game %s season %d week %d not found", home, season, week))
	}
	return nil
}

// InsertSimulationRun implements store.Writer. It is an audit record
// only; the caller has no use for the generated id, so unlike
// CreateEntry/CreatePick below this doesn't read the ObjectID back.
func (s *MongoStore) InsertSimulationRun(ctx context.Context, run models.SimulationRun) error {
	if run.RunAt.IsZero() {
		run.RunAt = time.Now()
	}
	if _, err := s.simRuns.InsertOne(ctx, run); err != nil {
		return engineerrors.Transient("insert simulation run failed", err.Error())
	}
	return nil
}

// SetPickOutcome implements store.Writer.
func (s *MongoStore) SetPickOutcome(ctx context.Context, pickID string, won bool) error {
	oid, err := primitive.ObjectIDFromHex(pickID)
	if err != nil {
		return engineerrors.NotFound("invalid pick id", pickID)
	}
	res, err := s.picks.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"outcome": won}})
	if err != nil {
		return engineerrors.Transient("set pick outcome failed", err.Error())
	}
	if res.MatchedCount == 0 {
		return engineerrors.NotFound("pick not found", pickID)
	}
	return nil
}

// ListEntries implements store.AdminStore.
func (s *MongoStore) ListEntries(ctx context.Context, season int) ([]models.Entry, error) {
	cursor, err := s.entries.Find(ctx, bson.M{"season": season})
	if err != nil {
		return nil, engineerrors.Transient("list entries failed", err.Error())
	}
	defer cursor.Close(ctx)

	var entries []models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, engineerrors.Transient("decode entries failed", err.Error())
	}
	return entries, nil
}

// GetEntry implements store.AdminStore.
func (s *MongoStore) GetEntry(ctx context.Context, entryID string) (*models.Entry, error) {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return nil, engineerrors.NotFound("invalid entry id", entryID)
	}
	var entry models.Entry
	err = s.entries.FindOne(ctx, bson.M{"_id": oid}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, engineerrors.NotFound("entry not found", entryID)
	}
	if err != nil {
		return nil, engineerrors.Transient("get entry failed", err.Error())
	}
	return &entry, nil
}

// CreateEntry implements store.AdminStore.
func (s *MongoStore) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.IsAlive = true
	result, err := s.entries.InsertOne(ctx, entry)
	if err != nil {
		return models.Entry{}, engineerrors.Transient("create entry failed", err.Error())
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid.Hex()
	}
	return entry, nil
}

// CreatePick implements store.AdminStore.
func (s *MongoStore) CreatePick(ctx context.Context, pick models.Pick) (models.Pick, error) {
	if pick.SubmittedAt.IsZero() {
		pick.SubmittedAt = time.Now()
	}
	result, err := s.picks.InsertOne(ctx, pick)
	if err != nil {
		return models.Pick{}, engineerrors.Transient("create pick failed", err.Error())
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		pick.ID = oid.Hex()
	}
	return pick, nil
}

// MarkEntryEliminated implements store.Writer.
func (s *MongoStore) MarkEntryEliminated(ctx context.Context, entryID string, week int) error {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return engineerrors.NotFound("invalid entry id", entryID)
	}
	update := bson.M{"$set": bson.M{"is_alive": false, "eliminated_week": week}}
	res, err := s.entries.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return engineerrors.Transient("mark entry eliminated failed", err.Error())
	}
	if res.MatchedCount == 0 {
		return engineerrors.NotFound("entry not found", entryID)
	}
	return nil
}
