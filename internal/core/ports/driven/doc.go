// Package driven holds the interfaces core services call out through.
//
// Casting needs a CoinFlipper and a ReferenceTable. Settings need a
// ConfigStore. Everything else may be nil:
//
//   - Narrator: passed per cast in domain.CastOptions; without it the cast is silent.
//   - FlipperFactory: without it a seed is ignored and the default coins are used.
//   - LLMService: without it interpretation reports ErrLLMUnavailable.
//   - PromptStore: without it the built-in prompts apply.
//   - AIConfigValidator: without it LLM settings are saved unchecked.
//
// This package imports domain and nothing else from the module.
package driven
