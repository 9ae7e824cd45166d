// Package uploader reconciles locally captured media with the remote endpoint:
// a best-effort, batched, resumable upload pass that never blocks capture.
// Each item's outcome is independent and persisted immediately, so a crashed
// or half-failed run simply continues on the next invocation.
package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/inspekto/internal/logging"
	"github.com/dmitrijs2005/inspekto/internal/models"
	"github.com/dmitrijs2005/inspekto/internal/repositories/media"
	"github.com/dmitrijs2005/inspekto/internal/repositories/settings"
)

// DefaultBatchSize caps how many items one Reconcile call attempts.
const DefaultBatchSize = 12

// ReasonNoEndpoint is reported when no upload endpoint is configured.
const ReasonNoEndpoint = "no-endpoint"

// Options configures a Reconciler. Settings and Media are required; the rest
// default to DefaultBatchSize, a 30s HTTP client and a nop logger.
type Options struct {
	Settings   settings.Repository
	Media      media.Repository
	HTTPClient *http.Client
	BatchSize  int
	Logger     logging.Logger
}

// Reconciler pushes pending media to the configured endpoint.
type Reconciler struct {
	settings   settings.Repository
	media      media.Repository
	httpClient *http.Client
	batchSize  int
	log        logging.Logger
}

func NewReconciler(opts Options) *Reconciler {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Reconciler{
		settings:   opts.Settings,
		media:      opts.Media,
		httpClient: httpClient,
		batchSize:  batchSize,
		log:        log,
	}
}

// Result summarizes one Reconcile call.
type Result struct {
	OK       bool   `json:"ok"`
	Reason   string `json:"reason,omitempty"`
	Uploaded int    `json:"uploaded"`
	Failed   int    `json:"failed"`
}

// Reconcile selects up to one batch of eligible media (payload present, known
// mime type, not audio, not yet uploaded) and uploads the items sequentially.
// A failed item gets its error recorded and stays pending for the next run;
// the batch never aborts because one item failed. With no endpoint configured
// the call is a no-op reporting ReasonNoEndpoint. The returned error is
// reserved for storage failures.
func (r *Reconciler) Reconcile(ctx context.Context) (Result, error) {
	endpoint, err := r.settings.GetString(ctx, models.SettingUploadEndpoint, "")
	if err != nil {
		return Result{}, fmt.Errorf("failed to read upload endpoint: %w", err)
	}
	if endpoint == "" {
		return Result{OK: false, Reason: ReasonNoEndpoint}, nil
	}

	all, err := r.media.GetAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list media: %w", err)
	}

	var eligible []models.Media
	for _, m := range all {
		if m.UploadEligible() {
			eligible = append(eligible, m)
		}
	}
	if len(eligible) == 0 {
		return Result{OK: true}, nil
	}

	// Capture order makes the selected subset deterministic across runs.
	sort.Slice(eligible, func(i, j int) bool {
		if !eligible[i].CreatedAt.Equal(eligible[j].CreatedAt) {
			return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
		}
		return eligible[i].ID < eligible[j].ID
	})
	batch := eligible
	if len(batch) > r.batchSize {
		batch = batch[:r.batchSize]
	}

	uploadURL := strings.TrimRight(endpoint, "/") + "/upload"
	result := Result{OK: true}
	for i := range batch {
		m := batch[i]
		if err := r.uploadOne(ctx, uploadURL, &m); err != nil {
			m.Uploaded = false
			m.UploadError = err.Error()
			result.Failed++
			r.log.Warn(ctx, "media upload failed", "mediaId", m.ID, "error", err.Error())
		} else {
			m.Uploaded = true
			m.UploadError = ""
			result.Uploaded++
		}
		if err := r.media.Save(ctx, &m); err != nil {
			return result, fmt.Errorf("failed to persist upload state: %w", err)
		}
	}

	r.log.Info(ctx, "reconcile finished", "uploaded", result.Uploaded, "failed", result.Failed)
	return result, nil
}

// uploadOne POSTs a single media item as multipart form data. A non-2xx
// response comes back as "HTTP {status}", recorded verbatim on the item.
func (r *Reconciler) uploadOne(ctx context.Context, url string, m *models.Media) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := w.WriteField("mediaId", m.ID); err != nil {
		return err
	}
	if err := w.WriteField("inspectionId", m.InspectionID); err != nil {
		return err
	}
	if err := w.WriteField("tag", string(m.Tag)); err != nil {
		return err
	}

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s.jpg"`, m.ID))
	hdr.Set("Content-Type", m.MimeType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		return err
	}
	if _, err := part.Write(m.Blob); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return nil
}
