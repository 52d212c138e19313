// Package generation contains the domain model for LLM-backed description
// generation: chat requests, the prompt, generation jobs with their lifecycle
// and the contracts implemented by the application and infrastructure layers.
package generation
