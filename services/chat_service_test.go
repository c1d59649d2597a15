package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"SoulSyncGo/config"
	"SoulSyncGo/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// stubChatModel 逐块回放预置内容的模型桩
type stubChatModel struct {
	chunks []string
	err    error
}

func (m *stubChatModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	if m.err != nil {
		return nil, m.err
	}

	for _, chunk := range m.chunks {
		if opts.StreamingFunc != nil {
			if err := opts.StreamingFunc(ctx, []byte(chunk)); err != nil {
				return nil, err
			}
		}
	}

	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: strings.Join(m.chunks, "")}},
	}, nil
}

func (m *stubChatModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return strings.Join(m.chunks, ""), m.err
}

func newTestChatService(t *testing.T, model *stubChatModel) *ChatService {
	t.Helper()
	config.Logger = zap.NewNop().Sugar()
	return NewChatService(&GroqClient{Chat: model})
}

func TestGenerateReplyStreamsChunks(t *testing.T) {
	svc := newTestChatService(t, &stubChatModel{chunks: []string{"Take ", "a deep ", "breath."}})

	stream, err := svc.GenerateReply(context.Background(), "I feel anxious", "", nil)
	if err != nil {
		t.Fatalf("GenerateReply failed: %v", err)
	}

	var sb strings.Builder
	for chunk := range stream {
		sb.WriteString(chunk)
	}
	if got := sb.String(); got != "Take a deep breath." {
		t.Errorf("streamed reply = %q, want %q", got, "Take a deep breath.")
	}

	svc.Wait()
}

func TestGenerateReplyFallbackOnError(t *testing.T) {
	svc := newTestChatService(t, &stubChatModel{err: context.DeadlineExceeded})

	stream, err := svc.GenerateReply(context.Background(), "hello", "", nil)
	if err != nil {
		t.Fatalf("GenerateReply failed: %v", err)
	}

	var sb strings.Builder
	for chunk := range stream {
		sb.WriteString(chunk)
	}
	if got := sb.String(); got != FallbackReply {
		t.Errorf("reply on model failure = %q, want fallback %q", got, FallbackReply)
	}

	svc.Wait()
}

func TestGenerateReplyClientDisconnect(t *testing.T) {
	svc := newTestChatService(t, &stubChatModel{chunks: []string{"one", "two", "three"}})

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := svc.GenerateReply(ctx, "hello", "", nil)
	if err != nil {
		t.Fatalf("GenerateReply failed: %v", err)
	}

	// 只读一个块后断开，之后不再消费
	<-stream
	cancel()

	done := make(chan struct{})
	go func() {
		svc.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("generation goroutine did not exit after client disconnect")
	}
}

func TestBuildHistoryMessages(t *testing.T) {
	var history []models.ChatMessage
	for i := 0; i < historyLimit+5; i++ {
		sender := models.SenderUser
		if i%2 == 1 {
			sender = models.SenderBot
		}
		history = append(history, models.ChatMessage{Message: "msg", SenderType: sender})
	}

	messages := buildHistoryMessages(history)
	if len(messages) != historyLimit {
		t.Fatalf("history messages = %d, want %d", len(messages), historyLimit)
	}

	// 截断后保留最近的消息，机器人消息映射为AI角色
	for i, msg := range messages {
		wantRole := schema.ChatMessageTypeHuman
		if history[len(history)-historyLimit+i].SenderType == models.SenderBot {
			wantRole = schema.ChatMessageTypeAI
		}
		if msg.Role != wantRole {
			t.Errorf("message %d role = %q, want %q", i, msg.Role, wantRole)
		}
	}
}
