package services

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/models"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type AuthService struct {
	db       *mongo.Database
	mailer   *utils.Mailer
	uploader *utils.Uploader
}

func NewAuthService(db *mongo.Database, mailer *utils.Mailer, uploader *utils.Uploader) *AuthService {
	return &AuthService{db: db, mailer: mailer, uploader: uploader}
}

func (s *AuthService) users() *mongo.Collection {
	return s.db.Collection("users")
}

type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Role         string `json:"role"`
}

func (s *AuthService) Register(ctx context.Context, username, email, password string, profile models.Profile, goals []string) (*models.User, *AuthTokens, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		Username:     username,
		Email:        email,
		Password:     hashed,
		Role:         "user",
		Profile:      profile,
		FitnessGoals: goals,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := s.users().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login never reveals whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *AuthTokens, error) {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, &user)
	if err != nil {
		return nil, nil, err
	}
	return &user, tokens, nil
}

// issueTokens signs a fresh access/refresh pair and persists the refresh
// token on the user record; Refresh only honors the one on file.
func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*AuthTokens, error) {
	access, err := utils.GenerateAccessToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateRefreshToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}

	_, err = s.users().UpdateByID(ctx, user.ID, bson.M{
		"$set": bson.M{"refreshToken": refresh, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return nil, err
	}
	return &AuthTokens{AccessToken: access, RefreshToken: refresh, Role: user.Role}, nil
}

// Refresh exchanges a valid refresh token for a new access token. A token
// that fails signature/expiry checks is unauthenticated; a valid token
// that does not match the one on file is forbidden.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, _, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", utils.ErrInvalidToken
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", utils.ErrInvalidToken
	}

	var user models.User
	if err := s.users().FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return "", utils.ErrInvalidToken
	}
	if user.RefreshToken != refreshToken {
		return "", ErrForbidden
	}

	return utils.GenerateAccessToken(user.ID.Hex(), user.Role)
}

// ForgotPassword always reports success. Unknown emails, store failures
// and send failures all look identical to the caller; anything else would
// let the response reveal whether an account exists.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	var user models.User
	if err := s.users().FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(32)
	_, err := s.users().UpdateByID(ctx, user.ID, bson.M{
		"$set": bson.M{
			"resetToken":    token,
			"resetTokenExp": time.Now().UTC().Add(15 * time.Minute),
			"updatedAt":     time.Now().UTC(),
		},
	})
	if err != nil {
		log.Printf("reset token persist failed for %s: %v", email, err)
		return nil
	}

	if s.mailer == nil {
		log.Printf("mailer not configured, skipping reset email for %s", email)
		return nil
	}
	if err := s.mailer.SendResetEmail(ctx, user.Email, token); err != nil {
		log.Printf("reset email send failed for %s: %v", email, err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"resetToken": token}).Decode(&user)
	if err != nil || time.Now().After(user.ResetTokenExp) {
		return ErrResetTokenInvalid
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	// Invalidate the refresh token too: a reset means the old credential
	// set can no longer be trusted.
	_, err = s.users().UpdateByID(ctx, user.ID, bson.M{
		"$set":   bson.M{"password": hashed, "updatedAt": time.Now().UTC()},
		"$unset": bson.M{"resetToken": "", "resetTokenExp": "", "refreshToken": ""},
	})
	return err
}

func (s *AuthService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.users().FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

type ProfileInput struct {
	Username       *string         `json:"username"`
	FirstName      *string         `json:"firstName"`
	LastName       *string         `json:"lastName"`
	Age            *int            `json:"age"`
	Gender         *string         `json:"gender"`
	Height         *float64        `json:"height"`
	Weight         *float64        `json:"weight"`
	DateOfBirth    *time.Time      `json:"dateOfBirth"`
	FitnessGoals   *[]string       `json:"fitnessGoals"`
	ProfilePicture *string         `json:"profilePicture"` // base64 data URL
}

// UpdateProfile is a partial overwrite: only provided fields replace the
// stored ones.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input ProfileInput) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}

	if input.Username != nil {
		set["username"] = *input.Username
	}
	if input.FirstName != nil {
		set["profile.firstName"] = *input.FirstName
	}
	if input.LastName != nil {
		set["profile.lastName"] = *input.LastName
	}
	if input.Age != nil {
		set["profile.age"] = *input.Age
	}
	if input.Gender != nil {
		set["profile.gender"] = *input.Gender
	}
	if input.Height != nil {
		set["profile.height"] = *input.Height
	}
	if input.Weight != nil {
		set["profile.weight"] = *input.Weight
	}
	if input.DateOfBirth != nil {
		set["profile.dateOfBirth"] = *input.DateOfBirth
	}
	if input.FitnessGoals != nil {
		set["fitnessGoals"] = *input.FitnessGoals
	}
	if input.ProfilePicture != nil && *input.ProfilePicture != "" {
		if s.uploader == nil {
			return nil, errors.New("image uploads not configured")
		}
		url, err := s.uploader.UploadBase64Image(ctx, *input.ProfilePicture, userID.Hex())
		if err != nil {
			return nil, err
		}
		set["profilePicture"] = url
	}

	res, err := s.users().UpdateByID(ctx, userID, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetProfile(ctx, userID)
}

// UserExists backs the auth middleware's subject check.
func (s *AuthService) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	count, err := s.users().CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
