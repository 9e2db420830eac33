package ui

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roasdash/adapters/tabular"
	"roasdash/app"
	"roasdash/domain/campaign"
	"roasdash/domain/core"
	"roasdash/domain/metrics"
	"roasdash/internal/errors"
	"roasdash/internal/session"
)

const sessionHeader = "X-Session-ID"

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// session resolves the caller's session, creating one when the header is
// absent or stale. The session ID is echoed back on every response so
// clients can adopt a fresh session transparently.
func (s *Server) session(c *gin.Context) *session.Session {
	id := core.SessionID(c.GetHeader(sessionHeader))
	sess := s.service.Store().GetOrCreate(id)
	c.Header(sessionHeader, sess.ID.String())
	return sess
}

func (s *Server) handleCreateSession(c *gin.Context) {
	sess := s.service.Store().Create()
	c.Header(sessionHeader, sess.ID.String())
	c.JSON(http.StatusCreated, gin.H{"session_id": sess.ID.String()})
}

func (s *Server) handleUpload(c *gin.Context) {
	kind, err := campaign.ParseDatasetKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown dataset kind: %s", c.Param("kind"))})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	sess := s.session(c)
	report, err := s.service.IngestTable(sess, kind, header.Filename, file)
	if err != nil {
		// Schema and file errors are user-facing; the dataset stays absent
		// and the dashboard keeps working on whatever else is loaded
		status := http.StatusUnprocessableEntity
		if errors.GetCode(err) == errors.CodeFileUnreadable {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":      err.Error(),
			"code":       errors.GetCode(err),
			"dataset":    kind.String(),
			"session_id": sess.ID.String(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID.String(),
		"dataset":    kind.String(),
		"report":     report,
	})
}

// parseFilter reads the filter state from query parameters
func parseFilter(c *gin.Context) metrics.Filter {
	f := metrics.Filter{
		Brand:    c.Query("brand"),
		Platform: c.Query("platform"),
		Tier:     campaign.Tier(c.Query("tier")),
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.From = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.To = t
		}
	}
	return f
}

func (s *Server) handlePerformance(c *gin.Context) {
	sess := s.session(c)
	snap := s.service.Compute(sess, parseFilter(c))
	c.JSON(http.StatusOK, gin.H{
		"session_id":  sess.ID.String(),
		"sample_data": snap.SampleData,
		"overview":    snap.Overview,
		"rows":        snap.Rows,
	})
}

func (s *Server) handleDetailed(c *gin.Context) {
	sess := s.session(c)
	filter := parseFilter(c)
	data := s.service.Store().Dataset(sess)
	snap := s.service.Compute(sess, filter)
	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID.String(),
		"rows":       app.DetailedView(snap.Rows, data.Influencers),
	})
}

func (s *Server) handleIncremental(c *gin.Context) {
	sess := s.session(c)
	snap := s.service.Compute(sess, metrics.Filter{})
	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID.String(),
		"lift":       snap.Lift,
	})
}

func (s *Server) handleInsights(c *gin.Context) {
	sess := s.session(c)
	snap := s.service.Compute(sess, parseFilter(c))
	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID.String(),
		"insights":   snap.Insights,
	})
}

func (s *Server) handleGroupings(c *gin.Context) {
	sess := s.session(c)
	snap := s.service.Compute(sess, parseFilter(c))

	var groups []metrics.GroupedROAS
	switch c.Param("key") {
	case "brand":
		groups = snap.BrandROAS
	case "platform":
		groups = snap.PlatformROAS
	case "product":
		groups = metrics.ByProduct(snap.Rows)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown grouping key: %s", c.Param("key"))})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID.String(),
		"groups":     groups,
	})
}

func (s *Server) handleTemplate(c *gin.Context) {
	kind, err := campaign.ParseDatasetKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown dataset kind: %s", c.Param("kind"))})
		return
	}

	content, ok := tabular.Template(kind)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not available"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_template.csv", kind))
	c.Data(http.StatusOK, "text/csv", []byte(content))
}

func (s *Server) handleSampleCSV(c *gin.Context) {
	kind, err := campaign.ParseDatasetKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown dataset kind: %s", c.Param("kind"))})
		return
	}

	data := s.service.Store().SampleData()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_sample.csv", kind))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := tabular.WriteDataset(c.Writer, data, kind); err != nil {
		s.logger.Error("sample CSV write failed for %s: %v", kind, err)
	}
}
