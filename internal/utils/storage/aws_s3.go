package storage

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"foodies-backend/internal/utils"
)

type awsS3 struct {
	client *s3.Client
	bucket string
	region string
}

func NewAwsS3() Storage {
	utils.LoadConfig()
	region := utils.GetConfig("AWS_S3_REGION")

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				utils.GetConfig("AWS_ACCESS_KEY"),
				utils.GetConfig("AWS_SECRET_KEY"),
				"",
			),
		),
	)
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}
}

func (s *awsS3) SaveAvatar(ctx context.Context, file *multipart.FileHeader, userID string) (string, error) {
	key := fmt.Sprintf("avatars/%s_%d%s", userID, time.Now().UnixMilli(), extOf(file))
	return s.put(ctx, file, key)
}

func (s *awsS3) SaveRecipeThumb(ctx context.Context, file *multipart.FileHeader, recipeID string) (string, error) {
	key := fmt.Sprintf("recipes/%s%s", recipeID, extOf(file))
	return s.put(ctx, file, key)
}

func (s *awsS3) put(ctx context.Context, file *multipart.FileHeader, key string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
