// Package services implements the driving port interfaces.
// Services contain the application logic and orchestrate calls
// to the balancing core and to driven ports (adapters).
package services
