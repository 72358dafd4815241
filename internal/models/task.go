// Package modelsはTaskを定義します。
package models

// Task は タスクのレコード構造体を表します。
// JSONタグ: クライアントとの通信およびバックアップファイルの形式用
type Task struct {
	// ID: 主キー (ストアが連番で自動採番する。削除後も再利用しない)
	ID int `json:"id"`

	// Title: タスクのタイトル（必須項目）
	Title string `json:"title"`

	// DueDate: 期限日 (YYYY-MM-DD 形式)。未設定の場合は null
	DueDate *string `json:"due_date"`

	// Completed: 完了状態
	Completed bool `json:"completed"`
}

// TaskPatch は部分更新で変更するフィールドを表します。
// nil のフィールドは「変更しない」を意味します。
// DueDate だけは null を指定して期限日をクリアできるため、
// DueDateSet でフィールドの有無を区別します。
type TaskPatch struct {
	Title      *string
	DueDate    *string
	DueDateSet bool
	Completed  *bool
}
