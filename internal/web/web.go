package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "github.com/goserg/standingsserver"
	"github.com/goserg/standingsserver/internal/config"
	"github.com/goserg/standingsserver/internal/domain"
	"github.com/goserg/standingsserver/internal/elo"
	"github.com/goserg/standingsserver/internal/metrics"
	"github.com/goserg/standingsserver/internal/service"
	"github.com/goserg/standingsserver/internal/storage"
	"github.com/goserg/standingsserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	standings *service.StandingsService
	app       *fiber.App
	cfg       config.Server
	metrics   *metrics.Metrics
	log       *logrus.Logger
}

func New(ss *service.StandingsService, cfg config.Server, m *metrics.Metrics, log *logrus.Logger) (*Server, error) {
	server := Server{
		standings: ss,
		cfg:       cfg,
		metrics:   m,
		log:       log,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})
	app.Get(webpath.ApiHome, server.handleStandings)
	app.Get(webpath.ApiRatings, server.handleRatings)
	app.Get(webpath.ApiPlayerInfo, server.handlePlayerInfo)

	app.Get(webpath.ApiJSONStandings, server.handleJSONStandings)
	app.Get(webpath.ApiJSONRatings, server.handleJSONRatings)
	app.Get(webpath.ApiJSONPlayerHistory, server.handleJSONPlayerHistory)
	app.Get(webpath.ApiJSONCompare, server.handleJSONCompare)
	app.Get(webpath.ApiExport, server.handleExport)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) handleStandings(ctx *fiber.Ctx) error {
	year, err := parseYear(ctx)
	if err != nil {
		return err
	}
	result, err := s.standings.Standings(year)
	s.metrics.Observe("standings", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Render("index", newData("Командный зачёт").
		With("Button", "standings").
		With("Standings", result.Display), "layouts/main")
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	ranked, err := s.standings.GetRatings()
	s.metrics.Observe("ratings", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Render("ratings", newData("Рейтинг игроков").
		With("Button", "ratings").
		With("Players", ranked), "layouts/main")
}

func (s *Server) handlePlayerInfo(ctx *fiber.Ctx) error {
	player, err := s.resolvePlayer(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	rating, err := s.standings.PlayerRating(player.ID, uuid.Nil)
	if err != nil {
		return s.fail(ctx, err)
	}
	rank, err := s.standings.GlobalRank(player.ID)
	if err != nil {
		return s.fail(ctx, err)
	}
	history, err := s.standings.PlayerHistory(player.ID)
	s.metrics.Observe("history", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Render("playerCard", newData(player.Name).
		With("Player", player).
		With("Rating", rating).
		With("Rank", rank).
		With("History", history), "layouts/main")
}

func (s *Server) handleJSONStandings(ctx *fiber.Ctx) error {
	year, err := parseYear(ctx)
	if err != nil {
		return err
	}
	result, err := s.standings.Standings(year)
	s.metrics.Observe("standings", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(convertStandings(result))
}

func (s *Server) handleJSONRatings(ctx *fiber.Ctx) error {
	ranked, err := s.standings.GetRatings()
	s.metrics.Observe("ratings", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(convertRanking(ranked))
}

func (s *Server) handleJSONPlayerHistory(ctx *fiber.Ctx) error {
	player, err := s.resolvePlayer(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	history, err := s.standings.PlayerHistory(player.ID)
	s.metrics.Observe("history", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(convertHistory(history))
}

func (s *Server) handleJSONCompare(ctx *fiber.Ctx) error {
	req, err := parseCompareRequest(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(fiber.Map{"errors": errorStrings(err)})
	}
	ratingA, err := s.standings.PlayerRating(req.PlayerA, uuid.Nil)
	if err != nil {
		return s.fail(ctx, err)
	}
	ratingB, err := s.standings.PlayerRating(req.PlayerB, uuid.Nil)
	s.metrics.Observe("compare", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	probability := elo.ExpectedScore(float64(ratingA), float64(ratingB))
	return ctx.JSON(compareResponse{
		PlayerA:      req.PlayerA.String(),
		PlayerB:      req.PlayerB.String(),
		RatingA:      ratingA,
		RatingB:      ratingB,
		ProbabilityA: probability,
		ProbabilityB: 1 - probability,
	})
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	data, err := s.standings.Export()
	s.metrics.Observe("export", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}

// resolvePlayer accepts either a player UUID or, with ?name=, a
// case-insensitive player name.
func (s *Server) resolvePlayer(ctx *fiber.Ctx) (player domain.Player, err error) {
	if name := ctx.Query("name"); name != "" {
		return s.standings.GetPlayerByName(name)
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return domain.Player{}, err
	}
	return s.standings.GetPlayer(id)
}

// fail maps not found to 404; anything else is logged and returned as 500.
func (s *Server) fail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		ctx.Status(fiber.StatusNotFound)
		return nil
	}
	s.log.WithError(err).Error("request failed")
	ctx.Status(fiber.StatusInternalServerError)
	return nil
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006г.")
}
