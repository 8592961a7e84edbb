package services

import (
	"context"
	"errors"
	"testing"

	"blog-platform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testPublisherID = "53231f78-13d6-11ed-861d-0242ac120002"
	testBlogID      = "a2f1c3b4-0000-4000-8000-000000000001"
	testPostID      = "a2f1c3b4-0000-4000-8000-000000000002"
)

func newBlogPostServiceForTest() (BlogPostService, *mockBlogPostRepository, *mockBlogRepository, *mockStorageService) {
	postRepo := new(mockBlogPostRepository)
	blogRepo := new(mockBlogRepository)
	storage := new(mockStorageService)
	blogService := NewBlogService(blogRepo, storage)

	return NewBlogPostService(postRepo, blogService, storage), postRepo, blogRepo, storage
}

func testImage() UploadFile {
	return UploadFile{Name: "avatar.png", Data: []byte("image-bytes")}
}

func ownedBlog() *models.Blog {
	return &models.Blog{ID: testBlogID, Name: "B", Description: "d", PublisherID: testPublisherID}
}

func postOwnedBy(publisherID string, status models.BlogPostStatus) *models.BlogPost {
	return &models.BlogPost{
		ID:          testPostID,
		Title:       "T",
		Description: "d2",
		Status:      status,
		Avatar:      "https://media-bucket.s3.amazonaws.com/blogs/" + publisherID + "/" + testBlogID + "/" + testPostID + ".png",
		BlogID:      testBlogID,
		Blog:        models.Blog{ID: testBlogID, PublisherID: publisherID},
	}
}

func TestCreateBlogPostEntersOnReview(t *testing.T) {
	service, postRepo, blogRepo, storage := newBlogPostServiceForTest()

	blogRepo.On("GetByPublisherAndID", testBlogID, testPublisherID).Return(ownedBlog(), nil)
	postRepo.On("Create", mock.AnythingOfType("*models.BlogPost")).Return(nil)
	storage.On("Upload", mock.Anything, testImage(), mock.AnythingOfType("services.UploadKey")).
		Return("https://media-bucket.s3.amazonaws.com/blogs/avatar.png", nil)
	postRepo.On("Update", mock.AnythingOfType("*models.BlogPost")).Return(nil)

	post, err := service.Create(context.Background(), testPublisherID, testImage(), models.CreateBlogPostRequest{
		BlogID:      testBlogID,
		Title:       "T",
		Description: "d2",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusOnReview, post.Status)
	assert.Equal(t, "https://media-bucket.s3.amazonaws.com/blogs/avatar.png", post.Avatar)
	assert.Equal(t, testBlogID, post.BlogID)
	postRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestCreateBlogPostRejectsForeignBlog(t *testing.T) {
	service, _, blogRepo, _ := newBlogPostServiceForTest()

	blogRepo.On("GetByPublisherAndID", testBlogID, "someone-else").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), "someone-else", testImage(), models.CreateBlogPostRequest{
		BlogID:      testBlogID,
		Title:       "T",
		Description: "d2",
	})

	require.Error(t, err)
	assert.IsType(t, models.ErrorBadRequest{}, err)
}

func TestCreateBlogPostUploadFailure(t *testing.T) {
	service, postRepo, blogRepo, storage := newBlogPostServiceForTest()

	blogRepo.On("GetByPublisherAndID", testBlogID, testPublisherID).Return(ownedBlog(), nil)
	postRepo.On("Create", mock.AnythingOfType("*models.BlogPost")).Return(nil)
	storage.On("Upload", mock.Anything, testImage(), mock.AnythingOfType("services.UploadKey")).
		Return("", models.NewInternalError("error while uploading image to s3 bucket", errors.New("boom")))

	_, err := service.Create(context.Background(), testPublisherID, testImage(), models.CreateBlogPostRequest{
		BlogID:      testBlogID,
		Title:       "T",
		Description: "d2",
	})

	require.Error(t, err)
	assert.IsType(t, models.ErrorInternalServer{}, err)
}

func TestGetPostsByBlogIDVisibility(t *testing.T) {
	params := models.PaginationParams{Page: 1, PerPage: 10}

	t.Run("anonymous caller sees only published", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetListByBlog", testBlogID, params, false).Return([]models.BlogPost{}, int64(0), nil)

		posts, total, err := service.GetPostsByBlogID(testBlogID, models.AuthUser{}, params)

		require.NoError(t, err)
		assert.Empty(t, posts)
		assert.Equal(t, int64(0), total)
		postRepo.AssertExpectations(t)
	})

	t.Run("owner sees posts on review", func(t *testing.T) {
		service, postRepo, blogRepo, _ := newBlogPostServiceForTest()
		blogRepo.On("GetByPublisherAndID", testBlogID, testPublisherID).Return(ownedBlog(), nil)
		postRepo.On("GetListByBlog", testBlogID, params, true).
			Return([]models.BlogPost{*postOwnedBy(testPublisherID, models.StatusOnReview)}, int64(1), nil)

		posts, total, err := service.GetPostsByBlogID(testBlogID, models.AuthUser{ID: testPublisherID, Role: models.RoleWriter}, params)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, models.StatusOnReview, posts[0].Status)
	})

	t.Run("moderator sees posts on review", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetListByBlog", testBlogID, params, true).
			Return([]models.BlogPost{*postOwnedBy(testPublisherID, models.StatusOnReview)}, int64(1), nil)

		posts, _, err := service.GetPostsByBlogID(testBlogID, models.AuthUser{ID: "mod-id", Role: models.RoleModerator}, params)

		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("other writer sees only published", func(t *testing.T) {
		service, postRepo, blogRepo, _ := newBlogPostServiceForTest()
		blogRepo.On("GetByPublisherAndID", testBlogID, "u2").Return(nil, gorm.ErrRecordNotFound)
		postRepo.On("GetListByBlog", testBlogID, params, false).Return([]models.BlogPost{}, int64(0), nil)

		posts, _, err := service.GetPostsByBlogID(testBlogID, models.AuthUser{ID: "u2", Role: models.RoleWriter}, params)

		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestGetBlogPostByIDAccordingToAvailability(t *testing.T) {
	t.Run("published post is visible to anyone", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusPublished), nil)

		post, err := service.GetByIDAccordingToAvailability(testPostID, models.AuthUser{})

		require.NoError(t, err)
		assert.Equal(t, models.StatusPublished, post.Status)
	})

	t.Run("anonymous caller cannot read pending post", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusOnReview), nil)

		_, err := service.GetByIDAccordingToAvailability(testPostID, models.AuthUser{})

		require.Error(t, err)
		assert.IsType(t, models.ErrorUnauthorized{}, err)
	})

	t.Run("owner reads pending post", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusOnReview), nil)

		post, err := service.GetByIDAccordingToAvailability(testPostID, models.AuthUser{ID: testPublisherID, Role: models.RoleWriter})

		require.NoError(t, err)
		assert.Equal(t, testPostID, post.ID)
	})

	t.Run("moderator reads pending post", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusOnReview), nil)

		_, err := service.GetByIDAccordingToAvailability(testPostID, models.AuthUser{ID: "mod-id", Role: models.RoleModerator})

		require.NoError(t, err)
	})

	t.Run("other user gets not found, not forbidden", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusOnReview), nil)

		_, err := service.GetByIDAccordingToAvailability(testPostID, models.AuthUser{ID: "u2", Role: models.RoleWriter})

		require.Error(t, err)
		assert.IsType(t, models.ErrorNotFound{}, err)
	})
}

func TestUpdateBlogPostResetsStatus(t *testing.T) {
	service, postRepo, _, _ := newBlogPostServiceForTest()

	postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusPublished), nil)
	postRepo.On("Update", mock.AnythingOfType("*models.BlogPost")).Return(nil)

	title := "new title"
	post, err := service.Update(testPublisherID, models.UpdateBlogPostRequest{
		BlogPostID: testPostID,
		Title:      &title,
	})

	require.NoError(t, err)
	assert.Equal(t, "new title", post.Title)
	assert.Equal(t, "d2", post.Description)
	assert.Equal(t, models.StatusOnReview, post.Status)
}

func TestUpdateBlogPostByNonOwnerFails(t *testing.T) {
	service, postRepo, _, _ := newBlogPostServiceForTest()

	postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusOnReview), nil)

	title := "new title"
	_, err := service.Update("u2", models.UpdateBlogPostRequest{
		BlogPostID: testPostID,
		Title:      &title,
	})

	require.Error(t, err)
	assert.IsType(t, models.ErrorForbidden{}, err)
	postRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateBlogPostAvatarReplacesURL(t *testing.T) {
	service, postRepo, _, storage := newBlogPostServiceForTest()

	post := postOwnedBy(testPublisherID, models.StatusOnReview)
	oldAvatar := post.Avatar
	postRepo.On("GetByID", testPostID).Return(post, nil)
	storage.On("Upload", mock.Anything, testImage(), UploadKey{
		OwnerID:    testPublisherID,
		ParentID:   testBlogID,
		ResourceID: testPostID,
	}).Return("https://media-bucket.s3.amazonaws.com/blogs/new.png", nil)
	postRepo.On("Update", mock.AnythingOfType("*models.BlogPost")).Return(nil)

	updated, err := service.UpdateAvatar(context.Background(), testPostID, testPublisherID, testImage())

	require.NoError(t, err)
	assert.NotEqual(t, oldAvatar, updated.Avatar)
	assert.Equal(t, "https://media-bucket.s3.amazonaws.com/blogs/new.png", updated.Avatar)
	// previous object is intentionally not deleted
	storage.AssertNotCalled(t, "DeleteByURL", mock.Anything, mock.Anything)
}

func TestHandleModeratorDecision(t *testing.T) {
	t.Run("publish decision publishes the post", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusOnReview), nil)
		postRepo.On("Update", mock.AnythingOfType("*models.BlogPost")).Return(nil)

		post, err := service.HandleModeratorDecision(models.ModeratorDecisionRequest{
			BlogPostID: testPostID,
			Decision:   models.DecisionPublish,
		})

		require.NoError(t, err)
		assert.Equal(t, models.StatusPublished, post.Status)
	})

	t.Run("reject decision rejects the post", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusOnReview), nil)
		postRepo.On("Update", mock.AnythingOfType("*models.BlogPost")).Return(nil)

		post, err := service.HandleModeratorDecision(models.ModeratorDecisionRequest{
			BlogPostID: testPostID,
			Decision:   models.DecisionReject,
		})

		require.NoError(t, err)
		assert.Equal(t, models.StatusRejected, post.Status)
	})

	t.Run("decision on decided post fails", func(t *testing.T) {
		for _, status := range []models.BlogPostStatus{models.StatusPublished, models.StatusRejected} {
			service, postRepo, _, _ := newBlogPostServiceForTest()
			postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, status), nil)

			_, err := service.HandleModeratorDecision(models.ModeratorDecisionRequest{
				BlogPostID: testPostID,
				Decision:   models.DecisionPublish,
			})

			require.Error(t, err)
			assert.IsType(t, models.ErrorBadRequest{}, err)
			postRepo.AssertNotCalled(t, "Update", mock.Anything)
		}
	})
}

func TestDeleteBlogPost(t *testing.T) {
	t.Run("owner deletes post and avatar object", func(t *testing.T) {
		service, postRepo, _, storage := newBlogPostServiceForTest()
		post := postOwnedBy(testPublisherID, models.StatusPublished)
		postRepo.On("GetByID", testPostID).Return(post, nil)
		postRepo.On("Delete", post).Return(nil)
		storage.On("DeleteByURL", mock.Anything, post.Avatar).Return(nil)

		err := service.Delete(context.Background(), testPostID, testPublisherID)

		require.NoError(t, err)
		postRepo.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		service, postRepo, _, _ := newBlogPostServiceForTest()
		postRepo.On("GetByID", testPostID).Return(postOwnedBy(testPublisherID, models.StatusPublished), nil)

		err := service.Delete(context.Background(), testPostID, "u2")

		require.Error(t, err)
		assert.IsType(t, models.ErrorForbidden{}, err)
		postRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("storage failure surfaces after the row is gone", func(t *testing.T) {
		service, postRepo, _, storage := newBlogPostServiceForTest()
		post := postOwnedBy(testPublisherID, models.StatusPublished)
		postRepo.On("GetByID", testPostID).Return(post, nil)
		postRepo.On("Delete", post).Return(nil)
		storage.On("DeleteByURL", mock.Anything, post.Avatar).
			Return(models.NewInternalError("Unable to delete image", errors.New("boom")))

		err := service.Delete(context.Background(), testPostID, testPublisherID)

		require.Error(t, err)
		assert.IsType(t, models.ErrorInternalServer{}, err)
		postRepo.AssertCalled(t, "Delete", post)
	})

	t.Run("post without avatar skips storage", func(t *testing.T) {
		service, postRepo, _, storage := newBlogPostServiceForTest()
		post := postOwnedBy(testPublisherID, models.StatusOnReview)
		post.Avatar = ""
		postRepo.On("GetByID", testPostID).Return(post, nil)
		postRepo.On("Delete", post).Return(nil)

		err := service.Delete(context.Background(), testPostID, testPublisherID)

		require.NoError(t, err)
		storage.AssertNotCalled(t, "DeleteByURL", mock.Anything, mock.Anything)
	})
}
