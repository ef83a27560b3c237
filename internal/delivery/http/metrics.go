package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cardshop_orders_created_total",
		Help: "Orders submitted by buyers.",
	})
	ordersDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cardshop_orders_delivered_total",
		Help: "Orders delivered by the operator.",
	})
	deliveriesOutOfStock = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cardshop_deliveries_out_of_stock_total",
		Help: "Delivery attempts refused because stock was empty.",
	})
)
