package module

import (
	"time"

	"moodlog/internal/core/notes"
	"moodlog/internal/platform/config"
	"moodlog/internal/platform/logger"
	moodshttp "moodlog/internal/services/api/moods/http"
	moodssvc "moodlog/internal/services/api/moods/service"
)

// Settings are the MOODS_* knobs
type Settings struct {
	Service   moodssvc.Options
	Transport moodshttp.Options
}

// FromConfig reads MOODS_* from the environment
// an unknown MOODS_REPORT_TZ panics at boot like any other bad required value
func FromConfig(c config.Conf) Settings {
	mc := c.Prefix("MOODS_")

	zone := mc.MayString("REPORT_TZ", "UTC")
	loc, err := time.LoadLocation(zone)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", "MOODS_REPORT_TZ").Str("zone", zone).Msg("invalid time zone")
	}

	return Settings{
		Service: moodssvc.Options{
			DefaultWindowDays: mc.MayInt("DEFAULT_WINDOW_DAYS", moodssvc.DefaultWindowDays),
			MaxWindowDays:     mc.MayInt("MAX_WINDOW_DAYS", moodssvc.MaxWindowDays),
			NotesMax:          mc.MayInt("NOTES_MAX", notes.DefaultMax),
			Location:          loc,
			StatementTimeout:  mc.MayDuration("STATEMENT_TIMEOUT", 5*time.Second),
		},
		Transport: moodshttp.Options{
			ConcealForeign: mc.MayBool("CONCEAL_FOREIGN", false),
		},
	}
}
