// Package layers provides reusable engine layers: a debug inspector overlay,
// an event trace recorder and an audio click feedback layer.
package layers
