package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/MKhiriev/api-activity/internal/app"
	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/validators"
	"github.com/MKhiriev/api-activity/models"
)

// maxSquareSide is the largest side whose area still fits in int64.
const maxSquareSide = 3037000499

type demoService struct{}

func NewDemoService() DemoService {
	return &demoService{}
}

func (d *demoService) Hello(ctx context.Context) models.Greeting {
	return models.Greeting{Message: app.MsgHelloWorld}
}

func (d *demoService) Square(ctx context.Context, num string) (models.SquareArea, error) {
	n, err := strconv.ParseInt(num, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return models.SquareArea{}, validators.NewValidationError(validators.FieldNum, validators.ErrNumberOutOfRange)
	}
	if err != nil || n < 0 {
		return models.SquareArea{}, validators.NewValidationError(validators.FieldNum, validators.ErrNotANumber)
	}
	if n > maxSquareSide {
		return models.SquareArea{}, validators.NewValidationError(validators.FieldNum, validators.ErrNumberOutOfRange)
	}

	logger.FromContext(ctx).Debug().Int64("num", n).Msg("computing square area")

	return models.SquareArea{
		Shape: app.ShapeSquare,
		Area:  n * n,
	}, nil
}

func (d *demoService) Echo(ctx context.Context, arg1, arg2 *string) models.EchoArgs {
	return models.EchoArgs{
		Arg1: arg1,
		Arg2: arg2,
	}
}
