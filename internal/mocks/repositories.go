package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/news-api/internal/apierr"
	"github.com/news-api/internal/models"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics map[string]*models.Topic
	Err    error
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: make(map[string]*models.Topic)}
}

func (m *MockTopicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	topics := []models.Topic{}
	for _, t := range m.Topics {
		topics = append(topics, *t)
	}
	return topics, nil
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.Topics[slug]
	return exists, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles      map[int]*models.Article
	CommentCounts map[int]int
	Err           error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:      make(map[int]*models.Article),
		CommentCounts: make(map[int]int),
	}
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	article, exists := m.Articles[id]
	if !exists {
		return nil, apierr.ArticleNotFound(apierr.MsgArticleDoesNotExist)
	}
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) GetAll(ctx context.Context, topic string) ([]models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	articles := []models.Article{}
	for _, a := range m.Articles {
		if topic != "" && a.Topic != topic {
			continue
		}
		copied := *a
		copied.Body = ""
		count := m.CommentCounts[a.ArticleID]
		copied.CommentCount = &count
		articles = append(articles, copied)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	article, exists := m.Articles[id]
	if !exists {
		return nil, apierr.ArticleNotFound(apierr.MsgArticleDoesNotExist)
	}
	article.Votes += delta
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.Articles[id]
	return exists, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments map[int]*models.Comment
	NextID   int
	Err      error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make(map[int]*models.Comment), NextID: 1}
}

func (m *MockCommentRepository) GetByArticleID(ctx context.Context, articleID int) ([]models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	comments := []models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID int, body, username string) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for m.Comments[m.NextID] != nil {
		m.NextID++
	}
	comment := &models.Comment{
		CommentID: m.NextID,
		Body:      body,
		Author:    username,
		ArticleID: articleID,
		Votes:     0,
		CreatedAt: time.Now(),
	}
	m.Comments[comment.CommentID] = comment
	m.NextID++
	copied := *comment
	return &copied, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.Comments[id]; !exists {
		return apierr.CommentNotFound()
	}
	delete(m.Comments, id)
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users map[string]*models.User
	Err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	users := []models.User{}
	for _, u := range m.Users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, exists := m.Users[username]
	return exists, nil
}
