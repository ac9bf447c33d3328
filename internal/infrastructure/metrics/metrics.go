package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector agrupa los contadores Prometheus de la aplicación.
type Collector struct {
	registrations    *prometheus.CounterVec
	logins           *prometheus.CounterVec
	donationsCreated prometheus.Counter
	statusUpdates    *prometheus.CounterVec
}

// NewCollector crea un Collector y registra sus métricas en el registry dado.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodforgood_registrations_total",
			Help: "Registros de usuarios por tipo (donor/ngo)",
		}, []string{"user_type"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodforgood_logins_total",
			Help: "Intentos de login por resultado (ok/fail)",
		}, []string{"result"}),
		donationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodforgood_donations_created_total",
			Help: "Donaciones publicadas",
		}),
		statusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodforgood_status_updates_total",
			Help: "Cambios de estado de donaciones por estado destino",
		}, []string{"status"}),
	}

	reg.MustRegister(
		c.registrations,
		c.logins,
		c.donationsCreated,
		c.statusUpdates,
	)

	return c
}

// RecordRegistration registra un alta de usuario.
func (c *Collector) RecordRegistration(userType string) {
	c.registrations.WithLabelValues(userType).Inc()
}

// RecordLogin registra un intento de login. ok indica si las credenciales validaron.
func (c *Collector) RecordLogin(ok bool) {
	result := "fail"
	if ok {
		result = "ok"
	}
	c.logins.WithLabelValues(result).Inc()
}

// RecordDonationCreated registra una donación publicada.
func (c *Collector) RecordDonationCreated() {
	c.donationsCreated.Inc()
}

// RecordStatusUpdate registra un cambio de estado.
func (c *Collector) RecordStatusUpdate(status string) {
	c.statusUpdates.WithLabelValues(status).Inc()
}

// Handler devuelve el handler HTTP para el scrape de Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
