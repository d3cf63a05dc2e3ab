package services

import (
	"context"
	"strings"
	"time"

	problem "github.com/artikelsmederij/artikel-generator-api/pkg/api_client/helpers/problem"
	util "github.com/artikelsmederij/artikel-generator-api/pkg/api_client/helpers/util"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/repositories"
	"github.com/artikelsmederij/artikel-generator-api/pkg/titleimport"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const stuckFailureCause = "generation interrupted: article was stuck in processing"

// Generator levert artikeltekst voor een titel; de fallback over providers
// zit achter deze interface.
type Generator interface {
	Generate(ctx context.Context, title string) (string, error)
}

// ArticlesAPIService implementeert titelintake, de generatieworkflow en de
// statusweergave.
type ArticlesAPIService struct {
	repo       repositories.ArticleRepository
	generator  Generator
	stuckAfter time.Duration
}

func NewArticlesAPIService(repo repositories.ArticleRepository, generator Generator, stuckAfter time.Duration) *ArticlesAPIService {
	if stuckAfter <= 0 {
		stuckAfter = 30 * time.Minute
	}
	return &ArticlesAPIService{repo: repo, generator: generator, stuckAfter: stuckAfter}
}

// AddTitles splitst de invoer op regels, trimt en gooit lege regels weg.
func (s *ArticlesAPIService) AddTitles(ctx context.Context, ownerID, raw string) (int, error) {
	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		if title := strings.TrimSpace(line); title != "" {
			titles = append(titles, title)
		}
	}
	if len(titles) == 0 {
		return 0, problem.NewBadRequest("titles", "No titles provided")
	}

	created, err := s.repo.CreateBatch(ctx, titles, &ownerID)
	if err != nil {
		return 0, err
	}
	return created, nil
}

// ImportTitles verwerkt een geüploade titel-CSV. De volledige batch slaagt of
// faalt; bij een parsefout wordt niets aangemaakt.
func (s *ArticlesAPIService) ImportTitles(ctx context.Context, ownerID, csvContent string) (int, error) {
	titles, err := titleimport.Parse(strings.NewReader(csvContent))
	if err != nil {
		return 0, problem.NewBadRequest("csv", "Error processing file: "+err.Error())
	}
	if len(titles) == 0 {
		return 0, problem.NewBadRequest("csv", "No titles provided")
	}

	created, err := s.repo.CreateBatch(ctx, titles, &ownerID)
	if err != nil {
		return 0, err
	}
	return created, nil
}

// Generate voert één generatiepoging uit: claim processing, providers proberen
// en de terminale status wegschrijven vóór het antwoord teruggaat.
func (s *ArticlesAPIService) Generate(ctx context.Context, userID, articleID string) (*models.GenerateResponse, error) {
	article, err := s.loadOwned(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}

	claimed, err := s.repo.ClaimProcessing(ctx, article.Id)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, problem.NewBadRequest(article.Id, "Article is already being processed")
	}

	content, err := s.generator.Generate(ctx, article.Title)
	if err != nil {
		// Geen enkele mislukking verdwijnt stil: de oorzaak komt altijd op
		// het artikel te staan.
		if markErr := s.repo.MarkFailed(ctx, article.Id, err.Error()); markErr != nil {
			return nil, problem.NewInternalServerError(markErr.Error())
		}
		return nil, problem.NewInternalServerError(err.Error())
	}

	if err := s.repo.MarkCompleted(ctx, article.Id, content); err != nil {
		return nil, problem.NewInternalServerError(err.Error())
	}

	return &models.GenerateResponse{Status: "success", Content: content}, nil
}

// Status geeft de actuele status en eventuele foutoorzaak van een artikel.
func (s *ArticlesAPIService) Status(ctx context.Context, userID, articleID string) (*models.ArticleStatusResponse, error) {
	article, err := s.loadOwned(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}
	return &models.ArticleStatusResponse{Status: article.Status, Error: article.Error}, nil
}

// ListArticles levert de artikelen van de gebruiker, nieuwste eerst.
func (s *ArticlesAPIService) ListArticles(ctx context.Context, userID string) ([]models.ArticleSummary, error) {
	articles, err := s.repo.GetArticlesByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.ArticleSummary, len(articles))
	for i, article := range articles {
		summaries[i] = util.ToArticleSummary(&article)
	}
	return summaries, nil
}

// SweepStuck markeert artikelen die te lang in processing hangen als failed,
// met begrensde parallelliteit.
func (s *ArticlesAPIService) SweepStuck(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.stuckAfter)
	stuck, err := s.repo.GetStuckProcessing(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if len(stuck) == 0 {
		return 0, nil
	}

	sem := semaphore.NewWeighted(4)
	g, ctx := errgroup.WithContext(ctx)
	for _, article := range stuck {
		id := article.Id
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			return s.repo.MarkFailed(ctx, id, stuckFailureCause)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(stuck), nil
}

func (s *ArticlesAPIService) loadOwned(ctx context.Context, userID, articleID string) (*models.Article, error) {
	article, err := s.repo.GetArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, problem.NewNotFound(articleID, "Article not found")
	}
	if article.OwnerID != nil && *article.OwnerID != userID {
		return nil, problem.NewForbidden(articleID, "Article belongs to another user")
	}
	return article, nil
}
