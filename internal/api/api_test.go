package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/api"
	"github.com/news-api/internal/mocks"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

func setupTestRouter() (*gin.Engine, *repository.Repositories) {
	gin.SetMode(gin.TestMode)

	topicRepo := mocks.NewMockTopicRepository()
	articleRepo := mocks.NewMockArticleRepository()
	commentRepo := mocks.NewMockCommentRepository()
	userRepo := mocks.NewMockUserRepository()

	topicRepo.Topics["mitch"] = &models.Topic{Slug: "mitch", Description: "The man, the Mitch, the legend"}
	topicRepo.Topics["cats"] = &models.Topic{Slug: "cats", Description: "Not dogs"}
	topicRepo.Topics["paper"] = &models.Topic{Slug: "paper", Description: "what books are made of"}

	userRepo.Users["butter_bridge"] = &models.User{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/jonny.jpg"}
	userRepo.Users["icellusedkars"] = &models.User{Username: "icellusedkars", Name: "sam", AvatarURL: "https://example.com/sam.jpg"}
	userRepo.Users["lurker"] = &models.User{Username: "lurker", Name: "do_nothing", AvatarURL: "https://example.com/lurker.png"}

	articleRepo.Articles[1] = &models.Article{
		ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch",
		Author: "butter_bridge", Body: "I find this existence challenging",
		CreatedAt: time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC), Votes: 100,
		ArticleImgURL: "https://example.com/1.jpg",
	}
	articleRepo.Articles[2] = &models.Article{
		ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch",
		Author: "icellusedkars", Body: "Call me Mitchell.",
		CreatedAt: time.Date(2020, 10, 16, 5, 3, 0, 0, time.UTC),
		ArticleImgURL: "https://example.com/2.jpg",
	}
	articleRepo.Articles[3] = &models.Article{
		ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch",
		Author: "icellusedkars", Body: "some gifs",
		CreatedAt: time.Date(2020, 11, 3, 9, 12, 0, 0, time.UTC),
		ArticleImgURL: "https://example.com/3.jpg",
	}
	articleRepo.Articles[4] = &models.Article{
		ArticleID: 4, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats",
		Author: "butter_bridge", Body: "Bastet walks amongst us",
		CreatedAt: time.Date(2020, 8, 3, 13, 14, 0, 0, time.UTC),
		ArticleImgURL: "https://example.com/4.jpg",
	}

	commentRepo.Comments[1] = &models.Comment{
		CommentID: 1, Body: "Oh, I've got compassion running out of my nose, pal!",
		Author: "butter_bridge", ArticleID: 2, Votes: 16,
		CreatedAt: time.Date(2020, 4, 6, 12, 17, 0, 0, time.UTC),
	}
	commentRepo.Comments[2] = &models.Comment{
		CommentID: 2, Body: "The beautiful thing about treasure is that it exists.",
		Author: "butter_bridge", ArticleID: 1, Votes: 14,
		CreatedAt: time.Date(2020, 10, 31, 3, 3, 0, 0, time.UTC),
	}
	commentRepo.Comments[3] = &models.Comment{
		CommentID: 3, Body: "I hate streaming noses",
		Author: "icellusedkars", ArticleID: 1, Votes: 0,
		CreatedAt: time.Date(2020, 11, 3, 21, 0, 0, 0, time.UTC),
	}
	commentRepo.NextID = 4

	articleRepo.CommentCounts[1] = 2
	articleRepo.CommentCounts[2] = 1
	articleRepo.CommentCounts[3] = 0
	articleRepo.CommentCounts[4] = 0

	repos := &repository.Repositories{
		Topic:   topicRepo,
		Article: articleRepo,
		Comment: commentRepo,
		User:    userRepo,
	}

	services := service.NewServices(repos, zerolog.Nop())
	router := api.NewRouter(services, zerolog.Nop())

	return router, repos
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader([]byte{})
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var response struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return response.Message
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/healthcheck", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "All OK" {
		t.Errorf("Expected 'All OK', got %q", msg)
	}
}

func TestEndpointCatalog(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var catalog map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &catalog); err != nil {
		t.Fatalf("Catalog is not valid JSON: %v", err)
	}
	if _, ok := catalog["GET /api/articles"]; !ok {
		t.Error("Catalog missing GET /api/articles entry")
	}
}

func TestUnmatchedRoute(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/topicss", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Endpoint Not Found" {
		t.Errorf("Expected 'Endpoint Not Found', got %q", msg)
	}
}

func TestGetTopics(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/topics", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Topics []models.Topic `json:"topics"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if len(response.Topics) != 3 {
		t.Errorf("Expected 3 topics, got %d", len(response.Topics))
	}
	for _, topic := range response.Topics {
		if topic.Slug == "" {
			t.Error("Topic slug should not be empty")
		}
	}
}

func TestGetArticles(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/articles", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Articles []models.Article `json:"articles"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if len(response.Articles) != 4 {
		t.Fatalf("Expected 4 articles, got %d", len(response.Articles))
	}

	// Newest first
	for i := 1; i < len(response.Articles); i++ {
		if response.Articles[i].CreatedAt.After(response.Articles[i-1].CreatedAt) {
			t.Errorf("Articles not sorted newest-first at index %d", i)
		}
	}

	// Every article carries a comment count, zero included
	for _, article := range response.Articles {
		if article.CommentCount == nil {
			t.Errorf("Article %d missing comment_count", article.ArticleID)
		}
	}
	for _, article := range response.Articles {
		switch article.ArticleID {
		case 1:
			if *article.CommentCount != 2 {
				t.Errorf("Expected comment_count 2 for article 1, got %d", *article.CommentCount)
			}
		case 3:
			if *article.CommentCount != 0 {
				t.Errorf("Expected comment_count 0 for article 3, got %d", *article.CommentCount)
			}
		}
	}
}

func TestGetArticlesByTopic(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/articles?topic=cats", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Articles []models.Article `json:"articles"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if len(response.Articles) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(response.Articles))
	}
	if response.Articles[0].Topic != "cats" {
		t.Errorf("Expected topic 'cats', got %q", response.Articles[0].Topic)
	}
}

func TestGetArticlesByTopicNoArticles(t *testing.T) {
	router, _ := setupTestRouter()

	// paper exists as a topic but has no articles: empty list, not an error
	w := doRequest(t, router, "GET", "/api/articles?topic=paper", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Articles []models.Article `json:"articles"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Articles == nil {
		t.Error("Expected empty array, got null")
	}
	if len(response.Articles) != 0 {
		t.Errorf("Expected 0 articles, got %d", len(response.Articles))
	}
}

func TestGetArticlesByUnknownTopic(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/articles?topic=food", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Invalid Query" {
		t.Errorf("Expected 'Invalid Query', got %q", msg)
	}
}

func TestGetArticleByID(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/articles/1", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Article models.Article `json:"article"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Article.ArticleID != 1 {
		t.Errorf("Expected article_id 1, got %d", response.Article.ArticleID)
	}
	if response.Article.Votes != 100 {
		t.Errorf("Expected votes 100, got %d", response.Article.Votes)
	}
	if response.Article.Body == "" {
		t.Error("Single article should include its body")
	}
}

func TestGetArticleByIDIdempotent(t *testing.T) {
	router, _ := setupTestRouter()

	first := doRequest(t, router, "GET", "/api/articles/1", nil)
	second := doRequest(t, router, "GET", "/api/articles/1", nil)

	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("Two reads with no intervening write should be byte-identical")
	}
}

func TestGetArticleByIDNotFound(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/articles/999", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Article does not exist" {
		t.Errorf("Expected 'Article does not exist', got %q", msg)
	}
}

func TestGetArticleByIDMalformed(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/articles/invalid_id", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Bad Request" {
		t.Errorf("Expected 'Bad Request', got %q", msg)
	}
}

func TestPatchArticleVotes(t *testing.T) {
	router, _ := setupTestRouter()

	body := []byte(`{"inc_votes": 10}`)
	w := doRequest(t, router, "PATCH", "/api/articles/1", body)

	if w.Code != http.StatusAccepted {
		t.Errorf("Expected status 202, got %d", w.Code)
	}

	var response struct {
		Article models.Article `json:"article"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Article.Votes != 110 {
		t.Errorf("Expected votes 110, got %d", response.Article.Votes)
	}
}

func TestPatchArticleVotesRoundTrip(t *testing.T) {
	router, _ := setupTestRouter()

	doRequest(t, router, "PATCH", "/api/articles/1", []byte(`{"inc_votes": 25}`))
	doRequest(t, router, "PATCH", "/api/articles/1", []byte(`{"inc_votes": -25}`))

	w := doRequest(t, router, "GET", "/api/articles/1", nil)
	var response struct {
		Article models.Article `json:"article"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Article.Votes != 100 {
		t.Errorf("Expected votes restored to 100, got %d", response.Article.Votes)
	}
}

func TestPatchArticleVotesMissingField(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "PATCH", "/api/articles/1", []byte(`{}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Bad Request" {
		t.Errorf("Expected 'Bad Request', got %q", msg)
	}
}

func TestPatchArticleVotesWrongType(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "PATCH", "/api/articles/1", []byte(`{"inc_votes": "ten"}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Bad Request" {
		t.Errorf("Expected 'Bad Request', got %q", msg)
	}
}

func TestPatchArticleVotesNotFound(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "PATCH", "/api/articles/999", []byte(`{"inc_votes": 1}`))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Article does not exist" {
		t.Errorf("Expected 'Article does not exist', got %q", msg)
	}
}

func TestGetCommentsByArticle(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/articles/1/comments", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Comments []models.Comment `json:"comments"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if len(response.Comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(response.Comments))
	}
	for i := 1; i < len(response.Comments); i++ {
		if response.Comments[i].CreatedAt.After(response.Comments[i-1].CreatedAt) {
			t.Errorf("Comments not sorted newest-first at index %d", i)
		}
	}
	for _, comment := range response.Comments {
		if comment.ArticleID != 1 {
			t.Errorf("Expected article_id 1, got %d", comment.ArticleID)
		}
	}
}

func TestGetCommentsByArticleEmpty(t *testing.T) {
	router, _ := setupTestRouter()

	// Article 3 exists but has no comments
	w := doRequest(t, router, "GET", "/api/articles/3/comments", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Comments []models.Comment `json:"comments"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Comments == nil {
		t.Error("Expected empty array, got null")
	}
	if len(response.Comments) != 0 {
		t.Errorf("Expected 0 comments, got %d", len(response.Comments))
	}
}

func TestGetCommentsByArticleNotFound(t *testing.T) {
	router, _ := setupTestRouter()

	// The existence check wins over the empty comment list
	w := doRequest(t, router, "GET", "/api/articles/999/comments", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Article Does Not Exist" {
		t.Errorf("Expected 'Article Does Not Exist', got %q", msg)
	}
}

func TestGetCommentsByArticleMalformed(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/articles/not_an_id/comments", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestPostComment(t *testing.T) {
	router, _ := setupTestRouter()

	body := []byte(`{"body": "I love pugs", "username": "lurker"}`)
	w := doRequest(t, router, "POST", "/api/articles/3/comments", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	var response struct {
		Comment models.Comment `json:"comment"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Comment.Body != "I love pugs" {
		t.Errorf("Expected body 'I love pugs', got %q", response.Comment.Body)
	}
	if response.Comment.Author != "lurker" {
		t.Errorf("Expected author 'lurker', got %q", response.Comment.Author)
	}
	if response.Comment.ArticleID != 3 {
		t.Errorf("Expected article_id 3, got %d", response.Comment.ArticleID)
	}
	if response.Comment.Votes != 0 {
		t.Errorf("Expected votes 0, got %d", response.Comment.Votes)
	}
	if response.Comment.CommentID == 0 {
		t.Error("Expected a generated comment_id")
	}
}

func TestPostCommentUnknownUser(t *testing.T) {
	router, repos := setupTestRouter()
	commentRepo := repos.Comment.(*mocks.MockCommentRepository)
	before := len(commentRepo.Comments)

	body := []byte(`{"body": "hello", "username": "invalid_user"}`)
	w := doRequest(t, router, "POST", "/api/articles/3/comments", body)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "User Does Not Exist" {
		t.Errorf("Expected 'User Does Not Exist', got %q", msg)
	}
	if len(commentRepo.Comments) != before {
		t.Error("No insert should be attempted when the user does not exist")
	}
}

func TestPostCommentMissingBody(t *testing.T) {
	router, _ := setupTestRouter()

	body := []byte(`{"username": "lurker"}`)
	w := doRequest(t, router, "POST", "/api/articles/3/comments", body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Bad Request" {
		t.Errorf("Expected 'Bad Request', got %q", msg)
	}
}

func TestPostCommentMissingUsername(t *testing.T) {
	router, _ := setupTestRouter()

	body := []byte(`{"body": "orphaned comment"}`)
	w := doRequest(t, router, "POST", "/api/articles/3/comments", body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestPostCommentArticleNotFound(t *testing.T) {
	router, _ := setupTestRouter()

	body := []byte(`{"body": "into the void", "username": "lurker"}`)
	w := doRequest(t, router, "POST", "/api/articles/999/comments", body)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Article Does Not Exist" {
		t.Errorf("Expected 'Article Does Not Exist', got %q", msg)
	}
}

func TestDeleteComment(t *testing.T) {
	router, repos := setupTestRouter()

	w := doRequest(t, router, "DELETE", "/api/comments/1", nil)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}

	commentRepo := repos.Comment.(*mocks.MockCommentRepository)
	if _, exists := commentRepo.Comments[1]; exists {
		t.Error("Comment 1 should have been deleted")
	}
}

func TestDeleteCommentNotFound(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "DELETE", "/api/comments/999", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	// Upstream wording, preserved as-is
	if msg := decodeMessage(t, w); msg != "Article Does Not Exist" {
		t.Errorf("Expected 'Article Does Not Exist', got %q", msg)
	}
}

func TestDeleteCommentMalformed(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "DELETE", "/api/comments/not_an_id", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestGetUsers(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/users", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Users []models.User `json:"users"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if len(response.Users) != 3 {
		t.Errorf("Expected 3 users, got %d", len(response.Users))
	}
	for _, user := range response.Users {
		if user.Username == "" {
			t.Error("Username should not be empty")
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(t, router, "GET", "/api/healthcheck", nil)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header to be set")
	}
}
