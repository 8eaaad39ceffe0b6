// Package config loads engine design points from TOML, INI, or YAML files.
//
// Every file is laid over the embedded default design point, so a file only
// needs the keys it changes. TOML and YAML nest gas properties under
// "<stage>.gas"; INI uses the same dotted section names.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ja7ad/jetcycle/pkg/engine"
	"github.com/ja7ad/jetcycle/pkg/gas"
	"github.com/ja7ad/jetcycle/pkg/stage"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultTOML []byte

var (
	// ErrUnsupportedFormat is returned for a file extension no decoder handles.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrUnknownKey is returned when a TOML or YAML file names a key the schema lacks.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Gas is a gas property block.
type Gas struct {
	Gamma float64 `toml:"gamma" yaml:"gamma"`
	R     float64 `toml:"r" yaml:"r"`
	Cp    float64 `toml:"cp" yaml:"cp"`
}

// Inlet is the [inlet] section.
type Inlet struct {
	StaticPressure      float64 `toml:"static_pressure" yaml:"static_pressure"`
	StaticTemperature   float64 `toml:"static_temperature" yaml:"static_temperature"`
	Velocity            float64 `toml:"velocity" yaml:"velocity"`
	ExitVelocity        float64 `toml:"exit_velocity" yaml:"exit_velocity"`
	AdiabaticEfficiency float64 `toml:"adiabatic_efficiency" yaml:"adiabatic_efficiency"`
	PressureRecovery    float64 `toml:"pressure_recovery" yaml:"pressure_recovery"`
	MassFlow            float64 `toml:"mass_flow" yaml:"mass_flow"`
	Gas                 Gas     `toml:"gas" yaml:"gas"`
}

// Compressor is the [compressor] section.
type Compressor struct {
	PressureRatio float64 `toml:"pressure_ratio" yaml:"pressure_ratio"`
	Efficiency    float64 `toml:"efficiency" yaml:"efficiency"`
	Gas           Gas     `toml:"gas" yaml:"gas"`
}

// Combustor is the [combustor] section.
type Combustor struct {
	FuelAirRatio        float64 `toml:"fuel_air_ratio" yaml:"fuel_air_ratio"`
	Efficiency          float64 `toml:"efficiency" yaml:"efficiency"`
	LHV                 float64 `toml:"lhv" yaml:"lhv"`
	Cp                  float64 `toml:"cp" yaml:"cp"`
	PressureLossRatio   float64 `toml:"pressure_loss_ratio" yaml:"pressure_loss_ratio"`
	StoichiometricRatio float64 `toml:"stoichiometric_ratio" yaml:"stoichiometric_ratio"`
}

// Turbine is the [turbine] section.
type Turbine struct {
	MechanicalEfficiency float64 `toml:"mechanical_efficiency" yaml:"mechanical_efficiency"`
	IsentropicEfficiency float64 `toml:"isentropic_efficiency" yaml:"isentropic_efficiency"`
	Gas                  Gas     `toml:"gas" yaml:"gas"`
}

// Afterburner is the [afterburner] section.
type Afterburner struct {
	ExitTemperature float64 `toml:"exit_temperature" yaml:"exit_temperature"`
	Cp              float64 `toml:"cp" yaml:"cp"`
	LHV             float64 `toml:"lhv" yaml:"lhv"`
	PressureLoss    float64 `toml:"pressure_loss" yaml:"pressure_loss"`
}

// Nozzle is the [nozzle] section.
type Nozzle struct {
	ExitMach        float64 `toml:"exit_mach" yaml:"exit_mach"`
	AmbientPressure float64 `toml:"ambient_pressure" yaml:"ambient_pressure"`
	Gas             Gas     `toml:"gas" yaml:"gas"`
}

// File is the on-disk design point.
type File struct {
	WorkBasis string `toml:"work_basis" yaml:"work_basis"`
	Dry       bool   `toml:"dry" yaml:"dry"`
	// Static drops ram drag; the free-stream speed is inlet.velocity.
	Static bool `toml:"static" yaml:"static"`

	Inlet       Inlet       `toml:"inlet" yaml:"inlet"`
	Compressor  Compressor  `toml:"compressor" yaml:"compressor"`
	Combustor   Combustor   `toml:"combustor" yaml:"combustor"`
	Turbine     Turbine     `toml:"turbine" yaml:"turbine"`
	Afterburner Afterburner `toml:"afterburner" yaml:"afterburner"`
	Nozzle      Nozzle      `toml:"nozzle" yaml:"nozzle"`
}

// Default returns the embedded design point.
func Default() (*engine.Config, error) {
	f, err := defaultFile()
	if err != nil {
		return nil, err
	}
	return f.Engine()
}

// Load reads path and overlays it on the embedded design point.
// The decoder is picked by extension: .toml, .ini, .yaml or .yml.
func Load(path string) (*engine.Config, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := f.Engine()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFile is Load without the conversion to engine.Config.
func LoadFile(path string) (*File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".ini", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := defaultFile()
	if err != nil {
		return nil, err
	}

	switch ext {
	case ".toml":
		err = decodeTOML(data, f)
	case ".ini":
		err = decodeINI(data, f)
	default:
		err = decodeYAML(data, f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

func defaultFile() (*File, error) {
	f := &File{}
	if err := toml.Unmarshal(defaultTOML, f); err != nil {
		return nil, fmt.Errorf("parsing embedded default: %w", err)
	}
	return f, nil
}

func decodeTOML(data []byte, f *File) error {
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return err
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		if strings.Contains(err.Error(), "not found in type") {
			return fmt.Errorf("%w: %v", ErrUnknownKey, err)
		}
		return err
	}
	return nil
}

// decodeINI keeps the current value of any missing or malformed key.
func decodeINI(data []byte, f *File) error {
	file, err := ini.Load(data)
	if err != nil {
		return err
	}

	root := file.Section(ini.DefaultSection)
	f.WorkBasis = root.Key("work_basis").MustString(f.WorkBasis)
	f.Dry = root.Key("dry").MustBool(f.Dry)
	f.Static = root.Key("static").MustBool(f.Static)

	in := file.Section("inlet")
	f.Inlet = Inlet{
		StaticPressure:      in.Key("static_pressure").MustFloat64(f.Inlet.StaticPressure),
		StaticTemperature:   in.Key("static_temperature").MustFloat64(f.Inlet.StaticTemperature),
		Velocity:            in.Key("velocity").MustFloat64(f.Inlet.Velocity),
		ExitVelocity:        in.Key("exit_velocity").MustFloat64(f.Inlet.ExitVelocity),
		AdiabaticEfficiency: in.Key("adiabatic_efficiency").MustFloat64(f.Inlet.AdiabaticEfficiency),
		PressureRecovery:    in.Key("pressure_recovery").MustFloat64(f.Inlet.PressureRecovery),
		MassFlow:            in.Key("mass_flow").MustFloat64(f.Inlet.MassFlow),
		Gas:                 iniGas(file.Section("inlet.gas"), f.Inlet.Gas),
	}

	c := file.Section("compressor")
	f.Compressor = Compressor{
		PressureRatio: c.Key("pressure_ratio").MustFloat64(f.Compressor.PressureRatio),
		Efficiency:    c.Key("efficiency").MustFloat64(f.Compressor.Efficiency),
		Gas:           iniGas(file.Section("compressor.gas"), f.Compressor.Gas),
	}

	b := file.Section("combustor")
	f.Combustor = Combustor{
		FuelAirRatio:        b.Key("fuel_air_ratio").MustFloat64(f.Combustor.FuelAirRatio),
		Efficiency:          b.Key("efficiency").MustFloat64(f.Combustor.Efficiency),
		LHV:                 b.Key("lhv").MustFloat64(f.Combustor.LHV),
		Cp:                  b.Key("cp").MustFloat64(f.Combustor.Cp),
		PressureLossRatio:   b.Key("pressure_loss_ratio").MustFloat64(f.Combustor.PressureLossRatio),
		StoichiometricRatio: b.Key("stoichiometric_ratio").MustFloat64(f.Combustor.StoichiometricRatio),
	}

	t := file.Section("turbine")
	f.Turbine = Turbine{
		MechanicalEfficiency: t.Key("mechanical_efficiency").MustFloat64(f.Turbine.MechanicalEfficiency),
		IsentropicEfficiency: t.Key("isentropic_efficiency").MustFloat64(f.Turbine.IsentropicEfficiency),
		Gas:                  iniGas(file.Section("turbine.gas"), f.Turbine.Gas),
	}

	ab := file.Section("afterburner")
	f.Afterburner = Afterburner{
		ExitTemperature: ab.Key("exit_temperature").MustFloat64(f.Afterburner.ExitTemperature),
		Cp:              ab.Key("cp").MustFloat64(f.Afterburner.Cp),
		LHV:             ab.Key("lhv").MustFloat64(f.Afterburner.LHV),
		PressureLoss:    ab.Key("pressure_loss").MustFloat64(f.Afterburner.PressureLoss),
	}

	n := file.Section("nozzle")
	f.Nozzle = Nozzle{
		ExitMach:        n.Key("exit_mach").MustFloat64(f.Nozzle.ExitMach),
		AmbientPressure: n.Key("ambient_pressure").MustFloat64(f.Nozzle.AmbientPressure),
		Gas:             iniGas(file.Section("nozzle.gas"), f.Nozzle.Gas),
	}
	return nil
}

func iniGas(s *ini.Section, def Gas) Gas {
	return Gas{
		Gamma: s.Key("gamma").MustFloat64(def.Gamma),
		R:     s.Key("r").MustFloat64(def.R),
		Cp:    s.Key("cp").MustFloat64(def.Cp),
	}
}

// Engine converts the file into an engine design point.
func (f *File) Engine() (*engine.Config, error) {
	wb, err := engine.ParseWorkBasis(f.WorkBasis)
	if err != nil {
		return nil, err
	}
	return &engine.Config{
		Inlet: stage.InletConfig{
			StaticPressure:      f.Inlet.StaticPressure,
			StaticTemperature:   f.Inlet.StaticTemperature,
			Velocity:            f.Inlet.Velocity,
			ExitVelocity:        f.Inlet.ExitVelocity,
			Gas:                 f.Inlet.Gas.properties(),
			AdiabaticEfficiency: f.Inlet.AdiabaticEfficiency,
			PressureRecovery:    f.Inlet.PressureRecovery,
			MassFlow:            f.Inlet.MassFlow,
		},
		Compressor: stage.CompressorConfig{
			PressureRatio: f.Compressor.PressureRatio,
			Efficiency:    f.Compressor.Efficiency,
			Gas:           f.Compressor.Gas.properties(),
		},
		Combustor: stage.CombustorConfig{
			FuelAirRatio:        f.Combustor.FuelAirRatio,
			Efficiency:          f.Combustor.Efficiency,
			LHV:                 f.Combustor.LHV,
			Cp:                  f.Combustor.Cp,
			PressureLossRatio:   f.Combustor.PressureLossRatio,
			StoichiometricRatio: f.Combustor.StoichiometricRatio,
		},
		Turbine: stage.TurbineConfig{
			MechanicalEfficiency: f.Turbine.MechanicalEfficiency,
			IsentropicEfficiency: f.Turbine.IsentropicEfficiency,
			Gas:                  f.Turbine.Gas.properties(),
		},
		Afterburner: stage.AfterburnerConfig{
			ExitTemperature: f.Afterburner.ExitTemperature,
			Cp:              f.Afterburner.Cp,
			LHV:             f.Afterburner.LHV,
			PressureLoss:    f.Afterburner.PressureLoss,
		},
		Nozzle: stage.NozzleConfig{
			ExitMach:        f.Nozzle.ExitMach,
			Gas:             f.Nozzle.Gas.properties(),
			AmbientPressure: f.Nozzle.AmbientPressure,
		},
		WorkBasis: wb,
		Dry:       f.Dry,
		Static:    f.Static,
	}, nil
}

func (g Gas) properties() gas.Properties {
	return gas.Properties{Gamma: g.Gamma, R: g.R, Cp: g.Cp}
}
