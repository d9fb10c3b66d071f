package firefly

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"

	"github.com/psedge/firefly-wise-importer/pkg/common"
)

type Firefly struct {
	cl         *req.Client
	apiKey     string
	fireflyURL string
}

func NewFirefly(
	apiKey string,
	fireflyURL string,
	cl *req.Client,
) *Firefly {
	return &Firefly{
		cl:         cl,
		fireflyURL: fireflyURL,
		apiKey:     apiKey,
	}
}

func (f *Firefly) ListAccounts(ctx context.Context) ([]*Account, error) {
	var apiResp GenericApiResponse[[]*Account]

	resp, err := f.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(f.apiKey).
		SetSuccessResult(&apiResp).
		SetQueryParam("limit", "100500").
		Get(f.fireflyURL + "/api/v1/accounts")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.WithStack(common.ErrUnauthorized)
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %v %s", resp.StatusCode, resp.String())
	}

	return apiResp.Data, nil
}

// SearchTransactions looks up existing records by correlation key. Firefly
// matches the query against descriptions, which is where the key is embedded.
func (f *Firefly) SearchTransactions(ctx context.Context, query string) ([]*TransactionRead, error) {
	var apiResp GenericApiResponse[[]*TransactionRead]

	resp, err := f.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(f.apiKey).
		SetQueryParam("query", query).
		SetSuccessResult(&apiResp).
		Get(f.fireflyURL + "/api/v1/search/transactions")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.WithStack(common.ErrUnauthorized)
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %v %s", resp.StatusCode, resp.String())
	}

	return apiResp.Data, nil
}

func (f *Firefly) CreateTransaction(ctx context.Context, payload *TransactionRequest) error {
	resp, err := f.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(f.apiKey).
		SetBody(payload).
		Post(f.fireflyURL + "/api/v1/transactions")
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		return errors.WithStack(common.ErrDuplicate)
	}

	return f.checkWrite(resp)
}

func (f *Firefly) UpdateTransaction(ctx context.Context, id string, payload *TransactionRequest) error {
	resp, err := f.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(f.apiKey).
		SetBody(payload).
		Put(fmt.Sprintf("%s/api/v1/transactions/%s", f.fireflyURL, id))
	if err != nil {
		return err
	}

	return f.checkWrite(resp)
}

func (f *Firefly) checkWrite(resp *req.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.WithStack(common.ErrUnauthorized)
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %v %s", resp.StatusCode, resp.String())
	}

	return nil
}
