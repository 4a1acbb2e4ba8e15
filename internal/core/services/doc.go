// Package services implements the driving ports.
//
// CastingService turns coin tosses or manual notation into a
// CastingResult; SymbolService names codes from the reference table;
// InterpretationService phrases a result for a language model; and
// SettingsService maps the config store onto AppSettings.
//
// Nothing here performs I/O directly. Randomness, tables, config and the
// model all arrive through driven ports.
package services
