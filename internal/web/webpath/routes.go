package webpath

const (
	Home = "/"

	Api           = "/api"
	ApiHome       = Api + Home
	ApiRatings    = Api + "/ratings"
	ApiPlayerInfo = Api + "/players/:id"

	ApiJSONStandings     = Api + "/json/standings"
	ApiJSONRatings       = Api + "/json/ratings"
	ApiJSONPlayerHistory = Api + "/json/players/:id/history"
	ApiJSONCompare       = Api + "/json/compare"
	ApiExport            = Api + "/export"
)

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Api":        Api,
		"ApiHome":    ApiHome,
		"ApiRatings": ApiRatings,
		"ApiExport":  ApiExport,
	}
}
