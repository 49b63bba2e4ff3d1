package taxengine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const (
	// TaxServiceName 服务全名
	TaxServiceName = "taxengine.v1.TaxService"
	// TaxServiceComputeProcedure 单笔计算
	TaxServiceComputeProcedure = "/" + TaxServiceName + "/Compute"
	// TaxServiceComputeBatchProcedure 批量计算
	TaxServiceComputeBatchProcedure = "/" + TaxServiceName + "/ComputeBatch"

	requestIDHeader = "X-Request-Id"
)

// ComputeRequest 单笔计算请求，收入以文本传入，由服务端解析
type ComputeRequest struct {
	Income string `json:"income"`
}

// ComputeResponse 单笔计算响应
type ComputeResponse struct {
	Computation *Computation `json:"computation"`
}

// ComputeBatchRequest 批量计算请求
type ComputeBatchRequest struct {
	Incomes []string `json:"incomes"`
}

// ComputeBatchResponse 批量计算响应，顺序与请求一致
type ComputeBatchResponse struct {
	Computations []*Computation `json:"computations"`
}

// Server 税额计算RPC服务，本身无状态
type Server struct {
	workers int
}

// NewServer 创建新的服务器实例
func NewServer(workers int) *Server {
	return &Server{workers: workers}
}

// Compute 计算单笔收入
func (s *Server) Compute(ctx context.Context, req *connect.Request[ComputeRequest]) (*connect.Response[ComputeResponse], error) {
	c, err := ComputeString(req.Msg.Income)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ComputeResponse{Computation: c}), nil
}

// ComputeBatch 批量计算
func (s *Server) ComputeBatch(ctx context.Context, req *connect.Request[ComputeBatchRequest]) (*connect.Response[ComputeBatchResponse], error) {
	cs, err := ComputeAll(ctx, req.Msg.Incomes, s.workers)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ComputeBatchResponse{Computations: cs}), nil
}

// NewTaxServiceHandler 构造服务的HTTP处理器
// 返回：挂载路径前缀与处理器，用法与生成代码中的 NewXxxServiceHandler 一致
func NewTaxServiceHandler(svc *Server, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(jsonHandlerOptions(), opts...)
	mux := http.NewServeMux()
	mux.Handle(TaxServiceComputeProcedure, connect.NewUnaryHandler(
		TaxServiceComputeProcedure, svc.Compute, opts...,
	))
	mux.Handle(TaxServiceComputeBatchProcedure, connect.NewUnaryHandler(
		TaxServiceComputeBatchProcedure, svc.ComputeBatch, opts...,
	))
	return "/" + TaxServiceName + "/", mux
}

// NewHTTPHandler 组装完整的HTTP处理器：RPC服务、健康检查与CORS
// 参数：svc-服务实例，allowedOrigins-允许的浏览器来源，为空时允许任意来源
func NewHTTPHandler(svc *Server, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	path, handler := NewTaxServiceHandler(svc, connect.WithInterceptors(NewLoggingInterceptor()))
	mux.Handle(path, handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(mux)
}

// RunServer 启动服务直到ctx取消，随后优雅退出
func RunServer(ctx context.Context, address string, svc *Server, allowedOrigins []string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           NewHTTPHandler(svc, allowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Infof("server listening at %v", address)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", address, err)
	case <-ctx.Done():
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewLoggingInterceptor 为每次调用分配请求ID并记录耗时
func NewLoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			id := uuid.NewString()
			start := time.Now()
			res, err := next(ctx, req)
			entry := log.WithFields(logrus.Fields{
				"request_id": id,
				"procedure":  req.Spec().Procedure,
				"latency":    time.Since(start),
			})
			if err != nil {
				entry.WithError(err).Warn("call failed")
				var cerr *connect.Error
				if errors.As(err, &cerr) {
					cerr.Meta().Set(requestIDHeader, id)
				}
				return res, err
			}
			entry.Debug("call ok")
			res.Header().Set(requestIDHeader, id)
			return res, nil
		}
	}
}

// toConnectError 把引擎错误映射为connect错误码
func toConnectError(err error) error {
	switch {
	case IsInvalidIncome(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, fmt.Errorf("failed to calculate tax: %w", err))
	}
}
