package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var unresolvedAttachments = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "checkout_addons",
	Name:      "unresolved_attachments_total",
	Help:      "Attachment URLs that matched no media file",
})
