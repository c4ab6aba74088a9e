package test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIStats(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("RequiresAuth", func(t *testing.T) {
		resp := request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats", nil, ""))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("EmptyAccount", func(t *testing.T) {
		acct := mustRegister(t)

		resp := request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats", nil, acct.Token))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var stats statsOut
		decodeBody(t, resp, &stats)
		assert.Zero(t, stats.TotalCount)
		assert.Empty(t, stats.ByType)
		assert.Empty(t, stats.ByDate)
		assert.Nil(t, stats.MostCommonAction)
	})

	t.Run("CountsAndMostCommon", func(t *testing.T) {
		acct := mustRegister(t)
		mustCreateActivity(t, acct, "login")
		mustCreateActivity(t, acct, "login")
		mustCreateActivity(t, acct, "click")

		resp := request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats", nil, acct.Token))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var stats statsOut
		decodeBody(t, resp, &stats)
		assert.Equal(t, 3, stats.TotalCount)
		assert.Equal(t, map[string]int{"login": 2, "click": 1}, stats.ByType)
		if assert.NotNil(t, stats.MostCommonAction) {
			assert.Equal(t, "login", *stats.MostCommonAction)
		}

		sum := 0
		for _, n := range stats.ByDate {
			sum += n
		}
		assert.Equal(t, stats.TotalCount, sum)
	})

	t.Run("TieBreaksToFirstEncounter", func(t *testing.T) {
		acct := mustRegister(t)
		mustCreateActivity(t, acct, "export")
		mustCreateActivity(t, acct, "login")
		mustCreateActivity(t, acct, "login")
		mustCreateActivity(t, acct, "export")

		resp := request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats", nil, acct.Token))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var stats statsOut
		decodeBody(t, resp, &stats)
		if assert.NotNil(t, stats.MostCommonAction) {
			// export was recorded first, so it wins the 2-2 tie.
			assert.Equal(t, "export", *stats.MostCommonAction)
		}
	})

	t.Run("ReflectsDeletes", func(t *testing.T) {
		acct := mustRegister(t)
		mustCreateActivity(t, acct, "login")
		doomed := mustCreateActivity(t, acct, "click")

		resp := request(t, jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/dashboard/activities/%d", doomed.ID), nil, acct.Token))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats", nil, acct.Token))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var stats statsOut
		decodeBody(t, resp, &stats)
		assert.Equal(t, 1, stats.TotalCount)
		// The deleted record was the sole "click", so its bucket is gone.
		assert.Equal(t, map[string]int{"login": 1}, stats.ByType)
	})

	t.Run("WindowFilters", func(t *testing.T) {
		acct := mustRegister(t)
		mustCreateActivity(t, acct, "login")

		now := time.Now().UTC()
		yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
		tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

		resp := request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats?start_date="+tomorrow, nil, acct.Token))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var future statsOut
		decodeBody(t, resp, &future)
		assert.Zero(t, future.TotalCount)
		assert.Nil(t, future.MostCommonAction)

		resp = request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats?start_date="+yesterday+"&end_date="+tomorrow, nil, acct.Token))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var within statsOut
		decodeBody(t, resp, &within)
		assert.Equal(t, 1, within.TotalCount)
	})

	t.Run("RejectsMalformedDates", func(t *testing.T) {
		acct := mustRegister(t)

		resp := request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats?start_date=garbage", nil, acct.Token))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats?end_date=2024-13-40", nil, acct.Token))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RejectsInvertedWindow", func(t *testing.T) {
		acct := mustRegister(t)

		resp := request(t, jsonRequest(t, http.MethodGet, "/api/v1/dashboard/stats?start_date=2024-02-02&end_date=2024-02-01", nil, acct.Token))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, bodyString(resp), "start_date must not be after end_date")
	})
}
