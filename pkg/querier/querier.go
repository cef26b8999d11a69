package querier

import (
	"context"
	"strings"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database calls issued through the querier",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"method", "statement"},
)

// Querier выполняет запросы в транзакции из контекста (если она открыта через tx.Manager)
// или напрямую через пул.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	defer observe("exec", sql, time.Now())
	return q.get(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	defer observe("query", sql, time.Now())
	return q.get(ctx).Query(ctx, sql, args...)
}

// QueryRow измеряет только отправку запроса, Scan выполняется вызывающей стороной.
func (q *Querier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	defer observe("query_row", sql, time.Now())
	return q.get(ctx).QueryRow(ctx, sql, args...)
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func observe(method, sql string, start time.Time) {
	queryDuration.WithLabelValues(method, statementKind(sql)).Observe(time.Since(start).Seconds())
}

// statementKind первое ключевое слово запроса, чтобы не раздувать кардинальность метки.
func statementKind(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
