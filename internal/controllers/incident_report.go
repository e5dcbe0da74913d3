package controllers

import (
	"context"
	"sync"

	"github.com/lunahealth/luna/internal/models"
	"github.com/lunahealth/luna/internal/services"
)

const (
	ReportSubmittedMessage = "Report submitted. Thank you for speaking up."
	ReportFailedMessage    = "Failed to submit the report. Please try again."
)

type reportSender interface {
	SubmitIncidentReport(ctx context.Context, report models.IncidentReport) error
}

// IncidentReportController handles the single-shot report form. On
// success all seven fields are cleared and exactly one confirmation
// notice is emitted; on failure the fields stay so the user can
// resubmit manually. Nothing is retried.
type IncidentReportController struct {
	sender   reportSender
	notifier Notifier

	mu         sync.Mutex
	form       models.IncidentReport
	submitting bool
}

func NewIncidentReportController(sender reportSender, notifier Notifier) *IncidentReportController {
	return &IncidentReportController{sender: sender, notifier: notifier}
}

func (controller *IncidentReportController) SetForm(form models.IncidentReport) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.form = form
}

func (controller *IncidentReportController) Form() models.IncidentReport {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.form
}

func (controller *IncidentReportController) Submit(ctx context.Context) error {
	controller.mu.Lock()
	if controller.submitting {
		controller.mu.Unlock()
		return ErrRequestInFlight
	}
	form := controller.form
	if err := services.ValidateIncidentReport(form); err != nil {
		controller.mu.Unlock()
		controller.notifier.Notify(Notice{Kind: NoticeError, Message: err.Error()})
		return err
	}
	controller.submitting = true
	controller.mu.Unlock()

	err := controller.sender.SubmitIncidentReport(ctx, form)

	controller.mu.Lock()
	controller.submitting = false
	if err == nil {
		controller.form = models.IncidentReport{}
	}
	controller.mu.Unlock()

	switch {
	case err == nil:
		controller.notifier.Notify(Notice{Kind: NoticeSuccess, Message: ReportSubmittedMessage})
		return nil
	case isConnectFailure(err):
		controller.notifier.Notify(Notice{Kind: NoticeError, Message: CouldNotConnectMessage})
		return err
	default:
		controller.notifier.Notify(Notice{Kind: NoticeError, Message: ReportFailedMessage})
		return err
	}
}
