package sqlite

import (
	"database/sql"
	"errors"

	"github.com/goserg/standingsserver/gen/model"
	"github.com/goserg/standingsserver/gen/table"
	"github.com/goserg/standingsserver/internal/domain"
	"github.com/goserg/standingsserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

type Storage struct {
	db *sql.DB
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.RatingStorage = (*Storage)(nil)
var _ storage.TeamStorage = (*Storage)(nil)
var _ storage.EventStorage = (*Storage)(nil)

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.CreatedAt.ASC(), table.Players.ID.ASC()).
		Query(s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) ListActivePlayers() ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.Active.IS_TRUE()).
		ORDER_BY(table.Players.CreatedAt.ASC(), table.Players.ID.ASC()).
		Query(s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) GetPlayer(id uuid.UUID) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) AddPlayer(player domain.Player) (domain.Player, error) {
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(convertPlayerFromDomain(player)).
		Exec(s.db)
	if err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

func (s *Storage) ImportPlayers(players []domain.Player) error {
	models := make([]model.Players, 0, len(players))
	for _, player := range players {
		models = append(models, convertPlayerFromDomain(player))
	}
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODELS(models).
		Exec(s.db)
	return err
}

func (s *Storage) ListEventRatings(playerID uuid.UUID, eventID uuid.UUID) ([]domain.EventRating, error) {
	cond := sqlite.Bool(true)
	if playerID != uuid.Nil {
		cond = cond.AND(table.EventRatings.PlayerID.EQ(sqlite.String(playerID.String())))
	}
	if eventID != uuid.Nil {
		cond = cond.AND(table.EventRatings.EventID.EQ(sqlite.String(eventID.String())))
	}
	var ratings []model.EventRatings
	err := table.EventRatings.
		SELECT(table.EventRatings.AllColumns).
		FROM(table.EventRatings).
		WHERE(cond).
		Query(s.db, &ratings)
	if err != nil {
		return nil, err
	}
	return convertEventRatingsToDomain(ratings)
}

func (s *Storage) SaveEventRating(rating domain.EventRating) error {
	_, err := table.EventRatings.
		INSERT(table.EventRatings.AllColumns).
		MODEL(convertEventRatingFromDomain(rating)).
		ON_CONFLICT(table.EventRatings.PlayerID, table.EventRatings.EventID).
		DO_UPDATE(sqlite.SET(
			table.EventRatings.Rating.SET(sqlite.Int(int64(rating.Rating))),
		)).
		Exec(s.db)
	return err
}

func (s *Storage) ListHistory(playerID uuid.UUID, eventID uuid.UUID) ([]domain.RatingChange, error) {
	cond := table.EloHistory.PlayerID.EQ(sqlite.String(playerID.String()))
	if eventID != uuid.Nil {
		cond = cond.AND(table.EloHistory.EventID.EQ(sqlite.String(eventID.String())))
	}
	var history []model.EloHistory
	err := table.EloHistory.
		SELECT(table.EloHistory.AllColumns).
		FROM(table.EloHistory).
		WHERE(cond).
		ORDER_BY(table.EloHistory.CreatedAt.ASC(), table.EloHistory.ID.ASC()).
		Query(s.db, &history)
	if err != nil {
		return nil, err
	}
	return convertHistoryToDomain(history)
}

func (s *Storage) AppendHistory(change domain.RatingChange) error {
	_, err := table.EloHistory.
		INSERT(
			table.EloHistory.PlayerID,
			table.EloHistory.EventID,
			table.EloHistory.OldRating,
			table.EloHistory.NewRating,
			table.EloHistory.CreatedAt,
		).
		MODEL(convertChangeFromDomain(change)).
		Exec(s.db)
	return err
}

func (s *Storage) ListTeams(year int) ([]domain.Team, error) {
	cond := sqlite.Bool(true)
	if year != 0 {
		cond = cond.AND(table.Teams.Year.EQ(sqlite.Int(int64(year))))
	}
	var teams []model.Teams
	err := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		WHERE(cond).
		ORDER_BY(table.Teams.CreatedAt.ASC(), table.Teams.ID.ASC()).
		Query(s.db, &teams)
	if err != nil {
		return nil, err
	}
	return convertTeamsToDomain(teams)
}

func (s *Storage) GetTeam(id uuid.UUID) (domain.Team, error) {
	var team model.Teams
	err := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		WHERE(table.Teams.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &team)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Team{}, storage.ErrNotFound
		}
		return domain.Team{}, err
	}
	return convertTeamToDomain(team)
}

func (s *Storage) AddTeam(team domain.Team) (domain.Team, error) {
	_, err := table.Teams.
		INSERT(table.Teams.AllColumns).
		MODEL(convertTeamFromDomain(team)).
		Exec(s.db)
	if err != nil {
		return domain.Team{}, err
	}
	return team, nil
}

func (s *Storage) ListTeamMembers(teamID uuid.UUID, year int) ([]domain.TeamMember, error) {
	cond := sqlite.Bool(true)
	if teamID != uuid.Nil {
		cond = cond.AND(table.TeamMembers.TeamID.EQ(sqlite.String(teamID.String())))
	}
	if year != 0 {
		cond = cond.AND(table.TeamMembers.Year.EQ(sqlite.Int(int64(year))))
	}
	var members []model.TeamMembers
	err := table.TeamMembers.
		SELECT(table.TeamMembers.AllColumns).
		FROM(table.TeamMembers).
		WHERE(cond).
		Query(s.db, &members)
	if err != nil {
		return nil, err
	}
	return convertTeamMembersToDomain(members)
}

func (s *Storage) AddTeamMember(member domain.TeamMember) error {
	_, err := table.TeamMembers.
		INSERT(table.TeamMembers.AllColumns).
		MODEL(convertTeamMemberFromDomain(member)).
		Exec(s.db)
	return err
}

func (s *Storage) ListEvents(year int) ([]domain.Event, error) {
	cond := sqlite.Bool(true)
	if year != 0 {
		cond = cond.AND(table.Events.Year.EQ(sqlite.Int(int64(year))))
	}
	var events []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(cond).
		ORDER_BY(table.Events.CreatedAt.ASC(), table.Events.ID.ASC()).
		Query(s.db, &events)
	if err != nil {
		return nil, err
	}
	return convertEventsToDomain(events)
}

func (s *Storage) GetEvent(id uuid.UUID) (domain.Event, error) {
	var event model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &event)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Event{}, storage.ErrNotFound
		}
		return domain.Event{}, err
	}
	return convertEventToDomain(event)
}

func (s *Storage) AddEvent(event domain.Event) (domain.Event, error) {
	m, err := convertEventFromDomain(event)
	if err != nil {
		return domain.Event{}, err
	}
	_, err = table.Events.
		INSERT(table.Events.AllColumns).
		MODEL(m).
		Exec(s.db)
	if err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *Storage) SetFinalStandings(eventID uuid.UUID, standings []uuid.UUID) error {
	encoded, err := encodeStandings(standings)
	if err != nil {
		return err
	}
	res, err := table.Events.
		UPDATE(table.Events.Status, table.Events.FinalStandings).
		SET(
			sqlite.String(string(domain.StatusCompleted)),
			sqlite.String(encoded),
		).
		WHERE(table.Events.ID.EQ(sqlite.String(eventID.String()))).
		Exec(s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
