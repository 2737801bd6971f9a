// cmd/taskctl/main.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	accountID string
	userID    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskctl",
		Short: "Operator CLI for the TaskDeck API",
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "API base URL")
	rootCmd.PersistentFlags().StringVar(&accountID, "account", "", "account id (required)")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "user id")
	_ = rootCmd.MarkPersistentFlagRequired("account")

	rootCmd.AddCommand(newListCmd(), newCreateCmd(), newDeleteCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type taskRow struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"dueDate"`
	Priority  int        `json:"priority"`
	Status    int        `json:"status"`
	IsDraft   bool       `json:"isDraft"`
	IsDueSoon bool       `json:"isDueSoon"`
}

var statusNames = []string{"draft", "pending", "in progress", "completed", "cancelled"}
var priorityNames = []string{"low", "medium", "high"}

func newListCmd() *cobra.Command {
	var status int
	var draftsOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := serverURL + "/api/tasks"
			sep := "?"
			if cmd.Flags().Changed("status") {
				url += fmt.Sprintf("%sstatus=%d", sep, status)
				sep = "&"
			}
			if draftsOnly {
				url += sep + "isDraft=true"
			}

			body, err := call(http.MethodGet, url, nil)
			if err != nil {
				return err
			}

			var resp struct {
				Tasks []taskRow `json:"tasks"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Title", "Status", "Priority", "Due", "Due soon"})
			for _, row := range resp.Tasks {
				due := "-"
				if row.DueDate != nil {
					due = row.DueDate.Format("2006-01-02")
				}
				t.AppendRow(table.Row{
					row.ID, row.Title, statusNames[row.Status],
					priorityNames[row.Priority], due, row.IsDueSoon,
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&status, "status", 0, "filter by status code (0-4)")
	cmd.Flags().BoolVar(&draftsOnly, "drafts", false, "only drafts")
	return cmd
}

func newCreateCmd() *cobra.Command {
	var description string
	var due string
	var priority int
	var draft bool

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"title":   args[0],
				"isDraft": draft,
			}
			if description != "" {
				payload["description"] = description
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid --due, expected YYYY-MM-DD: %w", err)
				}
				payload["dueDate"] = dueDate
			}
			if cmd.Flags().Changed("priority") {
				payload["priority"] = priority
			}

			body, err := call(http.MethodPost, serverURL+"/api/tasks", payload)
			if err != nil {
				return err
			}

			var resp struct {
				TaskID string `json:"taskId"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			fmt.Println(resp.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "task description")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&priority, "priority", 1, "priority (0=low 1=medium 2=high)")
	cmd.Flags().BoolVar(&draft, "draft", false, "save as draft")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Soft-delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := call(http.MethodDelete, serverURL+"/api/tasks/"+args[0], nil); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
}

func call(method, url string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Account-Id", accountID)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return nil, fmt.Errorf("request failed: %s", resp.Status)
	}

	return data, nil
}
