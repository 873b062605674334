package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"playerhub_server/apperror"
	"playerhub_server/models"
	"playerhub_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 10

// UserService implements the player account store on top of the user table
// and its email index.
type UserService struct {
	Dynamo     *DynamoService
	Tokens     *TokenService
	Table      string
	EmailIndex string

	hashCost int
}

func NewUserService(dynamo *DynamoService, tokens *TokenService, table, emailIndex string) *UserService {
	return &UserService{
		Dynamo:     dynamo,
		Tokens:     tokens,
		Table:      table,
		EmailIndex: emailIndex,
		hashCost:   bcryptCost,
	}
}

// UserPage is one page of a user listing. Items are returned in the store's
// wire shape, not decoded.
type UserPage struct {
	Users    []map[string]types.AttributeValue `json:"users"`
	NextPage string                            `json:"nextPage,omitempty"`
}

// LoginResult carries the issued access token.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
}

// Create registers a new user: generates an id, hashes the password, and
// stores the record with creation timestamps. The returned record never
// contains the password, hashed or not.
func (us *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), us.hashCost)
	if err != nil {
		return nil, apperror.Internal("failed to hash password", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user := models.User{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hash),
		ProfilePicture:    req.ProfilePicture,
		Position:          req.Position,
		CurrentTeam:       req.CurrentTeam,
		YearsOfExperience: req.YearsOfExperience,
		PreviousClubs:     req.PreviousClubs,
		Achievements:      req.Achievements,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := us.Dynamo.PutItem(ctx, us.Table, user); err != nil {
		return nil, apperror.Internal("failed to create user", err)
	}

	user.Password = ""
	return &user, nil
}

// GetByID fetches one user by id.
func (us *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}

	item, err := us.Dynamo.GetItem(ctx, us.Table, key)
	if err != nil {
		return nil, apperror.Internal("failed to retrieve user", err)
	}
	if item == nil {
		return nil, apperror.NotFound("user")
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, apperror.Internal("failed to unmarshal user", err)
	}
	return &user, nil
}

// GetByEmail queries the email index. A missing email is not an error: the
// result is an empty slice.
func (us *UserService) GetByEmail(ctx context.Context, email string) ([]models.User, error) {
	items, err := us.Dynamo.QueryIndex(ctx, us.Table, us.EmailIndex, "email = :email", map[string]types.AttributeValue{
		":email": &types.AttributeValueMemberS{Value: email},
	})
	if err != nil {
		return nil, apperror.Internal("failed to query users by email", err)
	}

	users := make([]models.User, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &users); err != nil {
		return nil, apperror.Internal("failed to unmarshal users", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Update applies a sparse partial update to a user record. The update
// expression is built only from the fixed set of schema columns, and the
// update timestamp is always refreshed. The store treats an update to a
// missing id as an upsert; callers wanting a strict update fetch first.
func (us *UserService) Update(ctx context.Context, id string, req models.UpdateUserRequest) error {
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	expression := "SET "

	set := func(column string, value types.AttributeValue) {
		names["#"+column] = column
		values[":"+column] = value
		expression += fmt.Sprintf("#%s = :%s, ", column, column)
	}

	if req.Name != nil {
		set("name", &types.AttributeValueMemberS{Value: *req.Name})
	}
	if req.ProfilePicture != nil {
		set("profilePicture", &types.AttributeValueMemberS{Value: *req.ProfilePicture})
	}
	if req.Position != nil {
		set("position", &types.AttributeValueMemberS{Value: *req.Position})
	}
	if req.CurrentTeam != nil {
		set("currentTeam", &types.AttributeValueMemberS{Value: *req.CurrentTeam})
	}
	if req.YearsOfExperience != nil {
		set("yearsOfExperience", &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", *req.YearsOfExperience)})
	}
	if req.PreviousClubs != nil {
		clubs, err := attributevalue.Marshal(req.PreviousClubs)
		if err != nil {
			return apperror.Internal("failed to marshal previous clubs", err)
		}
		set("previousClubs", clubs)
	}
	if req.Achievements != nil {
		set("achievements", &types.AttributeValueMemberS{Value: *req.Achievements})
	}

	set("updatedAt", &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)})
	expression = expression[:len(expression)-2]

	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	if err := us.Dynamo.UpdateItem(ctx, us.Table, key, expression, names, values); err != nil {
		return apperror.Internal("failed to update user", err)
	}
	return nil
}

// Delete removes a user unconditionally. Deleting an unknown id succeeds.
func (us *UserService) Delete(ctx context.Context, id string) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	if err := us.Dynamo.DeleteItem(ctx, us.Table, key); err != nil {
		return apperror.Internal("failed to delete user", err)
	}
	return nil
}

// List scans one page of users. The cursor token is opaque to callers; an
// empty token starts from the beginning, and an empty NextPage in the
// result means the listing is exhausted.
func (us *UserService) List(ctx context.Context, limit int32, cursor string) (*UserPage, error) {
	startKey, err := utils.DecodeCursor(cursor)
	if err != nil {
		return nil, apperror.Validation("invalid pagination cursor")
	}

	items, lastKey, err := us.Dynamo.ScanPage(ctx, us.Table, limit, startKey)
	if err != nil {
		return nil, apperror.Internal("failed to list users", err)
	}

	next, err := utils.EncodeCursor(lastKey)
	if err != nil {
		return nil, apperror.Internal("failed to encode pagination cursor", err)
	}

	if items == nil {
		items = []map[string]types.AttributeValue{}
	}
	return &UserPage{Users: items, NextPage: next}, nil
}

// Login resolves a user by email and verifies the password against the
// stored hash. Unknown emails and bad passwords fail with distinct error
// kinds so the HTTP layer can answer 404 and 401 respectively.
func (us *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	users, err := us.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperror.NotFound("user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("invalid login")
	}

	token, err := us.Tokens.Sign(users[0].ID, email)
	if err != nil {
		return nil, apperror.Internal("failed to issue token", err)
	}

	log.Printf("User %s logged in", users[0].ID)
	return &LoginResult{AccessToken: token}, nil
}
