// Package notify delivers calibration alerts to the application log or a RabbitMQ exchange.
package notify
