package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// GetLoadedPrompts returns the loaded prompt content in a thread-safe way
func GetLoadedPrompts() *AllLoadedPrompts {
	return &loadedPrompts
}

// loadPromptsFromFiles loads custom prompts from external files if file paths are specified
func (c *Config) loadPromptsFromFiles() error {
	loadedPromptsOnce.Do(func() {
		loadedPrompts = AllLoadedPrompts{}
	})

	// Global prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.CustomPrompts.SystemPrompts, &loadedPrompts.Global.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load global system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.CustomPrompts.UserPrompts, &loadedPrompts.Global.UserPrompts); err != nil {
		return fmt.Errorf("failed to load global user prompts: %w", err)
	}

	// Operation-specific prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.Generate.CustomPrompts.SystemPrompts, &loadedPrompts.Generate.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load generate system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.Generate.CustomPrompts.UserPrompts, &loadedPrompts.Generate.UserPrompts); err != nil {
		return fmt.Errorf("failed to load generate user prompts: %w", err)
	}

	if err := c.loadSystemPromptsFromFiles(&c.AI.Analyze.CustomPrompts.SystemPrompts, &loadedPrompts.Analyze.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load analyze system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.Analyze.CustomPrompts.UserPrompts, &loadedPrompts.Analyze.UserPrompts); err != nil {
		return fmt.Errorf("failed to load analyze user prompts: %w", err)
	}

	return nil
}

// loadSystemPromptsFromFiles loads system prompts from files if file paths are specified
func (c *Config) loadSystemPromptsFromFiles(prompts *SystemPrompts, target *LoadedSystemPrompts) error {
	if prompts.GenerateContentFile != "" {
		content, err := c.loadPromptFromFile(prompts.GenerateContentFile, "system", "generateContent")
		if err != nil {
			return err
		}
		target.GenerateContent = content
	}

	if prompts.AnalyzeMatchFile != "" {
		content, err := c.loadPromptFromFile(prompts.AnalyzeMatchFile, "system", "analyzeMatch")
		if err != nil {
			return err
		}
		target.AnalyzeMatch = content
	}

	return nil
}

// loadUserPromptsFromFiles loads user prompts from files if file paths are specified
func (c *Config) loadUserPromptsFromFiles(prompts *UserPrompts, target *LoadedUserPrompts) error {
	fields := []struct {
		file string
		name string
		dst  *string
	}{
		{prompts.GenerateSummaryFile, "generateSummary", &target.GenerateSummary},
		{prompts.ImproveDescriptionFile, "improveDescription", &target.ImproveDescription},
		{prompts.SuggestSkillsFile, "suggestSkills", &target.SuggestSkills},
		{prompts.ExtractKeywordsFile, "extractKeywords", &target.ExtractKeywords},
		{prompts.JobMatchFile, "jobMatch", &target.JobMatch},
	}

	for _, f := range fields {
		if f.file == "" {
			continue
		}
		content, err := c.loadPromptFromFile(f.file, "user", f.name)
		if err != nil {
			return err
		}
		*f.dst = content
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	log.Printf("[CONFIG] Loaded %s %s prompt from file: %s (%d characters)",
		promptType, operation, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// validatePromptFiles validates that prompt files exist and are readable before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	validateFile := func(filePath, promptType, operation string) {
		if filePath == "" {
			return
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid path for %s %s prompt: %s", promptType, operation, filePath))
			return
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s %s prompt file not found: %s", promptType, operation, absPath))
		}
	}

	validateSet := func(scope string, prompts *PromptConfig) {
		validateFile(prompts.SystemPrompts.GenerateContentFile, scope+" system", "generateContent")
		validateFile(prompts.SystemPrompts.AnalyzeMatchFile, scope+" system", "analyzeMatch")
		validateFile(prompts.UserPrompts.GenerateSummaryFile, scope+" user", "generateSummary")
		validateFile(prompts.UserPrompts.ImproveDescriptionFile, scope+" user", "improveDescription")
		validateFile(prompts.UserPrompts.SuggestSkillsFile, scope+" user", "suggestSkills")
		validateFile(prompts.UserPrompts.ExtractKeywordsFile, scope+" user", "extractKeywords")
		validateFile(prompts.UserPrompts.JobMatchFile, scope+" user", "jobMatch")
	}

	validateSet("global", &c.AI.CustomPrompts)
	validateSet("generate", &c.AI.Generate.CustomPrompts)
	validateSet("analyze", &c.AI.Analyze.CustomPrompts)

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}
