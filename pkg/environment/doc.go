// Package environment runs the per-tick terrain simulation:
// creatures falling through auto-descent tiles, fire propagation,
// volumetric gas diffusion, keyless tile promotion, pressure-plate
// release, floor-item decay, and Yendor Warden tracking (spec 4.G).
// Simulator implements scheduler.EnvironmentUpdater without importing
// package scheduler, the same interface-segregation pattern used
// throughout this module to keep the package graph acyclic.
package environment
