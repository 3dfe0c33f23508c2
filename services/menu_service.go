// services/menu_service.go
package services

import (
	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"github.com/Om-Rawte/AIMenuAssistant/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
	AI   *AIService
}

func NewMenuService(repo *repository.MenuRepository, ai *AIService) *MenuService {
	return &MenuService{Repo: repo, AI: ai}
}

type MenuItemOut struct {
	entity.MenuItem
	TranslatedName        string `json:"translatedName,omitempty"`
	TranslatedDescription string `json:"translatedDescription,omitempty"`
}

// List returns the visible menu, machine-translating names and descriptions
// when the customer picked a non-English language. Translation falls back to
// the original text, so a provider outage never hides the menu.
func (s *MenuService) List(provider, lang string) ([]MenuItemOut, error) {
	items, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	out := make([]MenuItemOut, 0, len(items))
	for _, item := range items {
		row := MenuItemOut{MenuItem: item}
		if lang != "" && lang != "en" {
			row.TranslatedName = s.AI.Translate(provider, item.Name, lang)
			row.TranslatedDescription = s.AI.Translate(provider, item.Description, lang)
		}
		out = append(out, row)
	}
	return out, nil
}
