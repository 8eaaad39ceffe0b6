// Package stage implements the six stations of an afterburning turbojet as
// single-pass algebraic mappings from an upstream State to a downstream State.
//
// Overview
//
//   - State:
//     Station, P0 (Pa), T0 (K), H0 (J/kg), MassFlow (kg/s), EnergyFlow (W).
//     Every State a stage returns satisfies EnergyFlow = MassFlow * H0.
//
//   - Stages, in flow order:
//
//   - Inlet(cfg): free-stream static conditions to diffuser exit stagnation state.
//
//   - Compressor(in, cfg): pressure ratio and isentropic efficiency to exit state.
//
//   - Combustor(in, cfg): fuel-air ratio and heat release to exit state and fuel metrics.
//
//   - Turbine(in, cfg): compressor work extraction to exit state.
//
//   - Afterburner(in, cfg): reheat to a target temperature.
//
//   - Nozzle(in, cfg): isentropic expansion to an exit Mach number, thrust.
//
//   - Sweeps:
//     CombustorSweep evaluates the combustor at each fuel-air ratio, and
//     CompressorSensitivity recomputes the compressor exit temperature per
//     efficiency with the pressure ratio held fixed. Points are independent.
//
//   - Errors (errs.go):
//     ErrDomain         : a formula precondition failed
//     ErrParameterRange : a config value is outside its physical range
//     ErrInvalidState   : the upstream State is non-positive or non-finite
//     All are returned wrapped in *Error, which names the stage and parameter.
//
// Stages hold no state and perform no I/O. Reporting lives in pkg/report and
// pipeline wiring in pkg/engine.
package stage
