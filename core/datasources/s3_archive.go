// S3 Archive Datasource
//
// Reads inscription events exported as parquet files, partitioned by block:
//
//	s3://<bucket>/<prefix>/block_height=<height>/*.parquet
//
// A block without a partition has no events.
package datasources

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/gaze-network/orc20-indexer/pkg/parquetutils"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	s3ArchiveDownloadConcurrency = 4
	parquetFileSuffix            = ".parquet"
)

var _ Datasource[*types.Block] = (*S3ArchiveDatasource)(nil)

type S3ArchiveConfig struct {
	Bucket       string `mapstructure:"bucket"`
	Prefix       string `mapstructure:"prefix"`
	Region       string `mapstructure:"region"`
	Endpoint     string `mapstructure:"endpoint"` // Custom endpoint for S3 compatible storages.
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

type s3API interface {
	s3.ListObjectsV2APIClient
	manager.DownloadAPIClient
}

type S3ArchiveDatasource struct {
	s3Client s3API
	s3Bucket string
	prefix   string
	tip      ChainTip
}

func NewS3Archive(ctx context.Context, conf S3ArchiveConfig, tip ChainTip) (*S3ArchiveDatasource, error) {
	if conf.Bucket == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "s3 archive bucket is required")
	}

	var opts []func(*config.LoadOptions) error
	if conf.Region != "" {
		opts = append(opts, config.WithRegion(conf.Region))
	}
	sdkConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws user config")
	}

	s3client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
		o.UsePathStyle = conf.UsePathStyle
	})

	return &S3ArchiveDatasource{
		s3Client: s3client,
		s3Bucket: conf.Bucket,
		prefix:   strings.Trim(conf.Prefix, "/"),
		tip:      tip,
	}, nil
}

func (S3ArchiveDatasource) Name() string {
	return "s3_archive"
}

func (d *S3ArchiveDatasource) GetCurrentBlockHeight(ctx context.Context) (int64, error) {
	height, err := d.tip.GetCurrentBlockHeight(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get current block height")
	}
	return height, nil
}

func (d *S3ArchiveDatasource) Fetch(ctx context.Context, height int64) (*types.Block, error) {
	ctx = logger.WithContext(ctx,
		slogx.String("package", "datasources"),
		slogx.String("datasource", d.Name()),
		slogx.Int64("block_height", height),
	)

	files, err := d.listFiles(ctx, blockPartition(d.prefix, height))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	files = lo.Filter(files, func(key string, _ int) bool {
		return strings.HasSuffix(key, parquetFileSuffix)
	})

	results := make([][]archivedEvent, len(files))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(s3ArchiveDownloadConcurrency)
	for i, key := range files {
		eg.Go(func() error {
			data, err := d.downloadFile(ectx, key)
			if err != nil {
				return errors.WithStack(err)
			}
			rows, err := parquetutils.ReadBytes[archivedEvent](data)
			if err != nil {
				return errors.Wrapf(err, "can't read parquet file %q", key)
			}
			results[i] = rows
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.ErrorContext(ctx, "Failed to fetch archived events", slogx.Error(err))
		return nil, errors.Wrapf(err, "failed to fetch archived events of block %d", height)
	}

	events, err := decodeArchivedEvents(height, lo.Flatten(results))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &types.Block{
		Height: height,
		Events: events,
	}, nil
}

func blockPartition(prefix string, height int64) string {
	partition := "block_height=" + strconv.FormatInt(height, 10) + "/"
	if prefix == "" {
		return partition
	}
	return prefix + "/" + partition
}

func (d *S3ArchiveDatasource) listFiles(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(d.s3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(d.s3Bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "can't list s3 bucket objects for bucket %q and prefix %q", d.s3Bucket, prefix)
		}
		for _, item := range page.Contents {
			if item.Key != nil {
				keys = append(keys, *item.Key)
			}
		}
	}
	slices.Sort(keys)
	return keys, nil
}

func (d *S3ArchiveDatasource) downloadFile(ctx context.Context, key string) ([]byte, error) {
	downloader := manager.NewDownloader(d.s3Client, func(d *manager.Downloader) {
		d.Concurrency = 8
		d.PartSize = 10 * 1024 * 1024
	})

	buffer := manager.NewWriteAtBuffer([]byte{})
	numBytes, err := downloader.Download(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(d.s3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download file for bucket %q and key %q", d.s3Bucket, key)
	}

	if numBytes < 1 {
		return nil, errors.Wrapf(errs.NotFound, "got empty file %q", key)
	}

	return buffer.Bytes(), nil
}

type archivedEvent struct {
	ID                int64  `parquet:"name=id, type=INT64"`
	InscriptionID     string `parquet:"name=inscription_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	InscriptionNumber int64  `parquet:"name=inscription_number, type=INT64"`
	BlockHeight       int64  `parquet:"name=block_height, type=INT64"`
	Event             string `parquet:"name=event, type=BYTE_ARRAY, convertedtype=UTF8"`
	FromAddress       string `parquet:"name=from_address, type=BYTE_ARRAY, convertedtype=UTF8"`
	ToAddress         string `parquet:"name=to_address, type=BYTE_ARRAY, convertedtype=UTF8"`
	Time              string `parquet:"name=time, type=BYTE_ARRAY, convertedtype=UTF8"`
	Value             int64  `parquet:"name=value, type=INT64"`
	Content           string `parquet:"name=content, type=BYTE_ARRAY, convertedtype=UTF8"`
	Spent             bool   `parquet:"name=spent, type=BOOLEAN"`
}

func (a archivedEvent) ToInscriptionEvent() (*types.InscriptionEvent, error) {
	kind := types.EventKind(a.Event)
	if !kind.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown event kind %q", a.Event)
	}
	eventTime, err := types.ParseEventTime(a.Time)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &types.InscriptionEvent{
		ID:                a.ID,
		InscriptionID:     a.InscriptionID,
		InscriptionNumber: a.InscriptionNumber,
		BlockHeight:       a.BlockHeight,
		Kind:              kind,
		From:              a.FromAddress,
		To:                a.ToAddress,
		Time:              eventTime,
		Value:             a.Value,
		Content:           a.Content,
		Spent:             a.Spent,
	}, nil
}

// decodeArchivedEvents merges the rows of every file of a block into one feed ordered by id.
func decodeArchivedEvents(height int64, rows []archivedEvent) ([]*types.InscriptionEvent, error) {
	slices.SortFunc(rows, func(i, j archivedEvent) int {
		return cmp.Compare(i.ID, j.ID)
	})
	events := make([]*types.InscriptionEvent, 0, len(rows))
	for i, row := range rows {
		if row.BlockHeight != height {
			return nil, errors.Wrapf(errs.InternalError, "event %d belongs to block %d, expected %d", row.ID, row.BlockHeight, height)
		}
		if i > 0 && rows[i-1].ID == row.ID {
			return nil, errors.Wrapf(errs.InternalError, "duplicate event %d in block %d", row.ID, height)
		}
		event, err := row.ToInscriptionEvent()
		if err != nil {
			return nil, errors.Wrapf(err, "can't convert archived event %d", row.ID)
		}
		events = append(events, event)
	}
	return events, nil
}
